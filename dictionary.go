package forth

import (
	"fmt"
	"sort"
	"strings"
)

// dictionary maps word names to their recorded token sequences.  Entries
// are added only by committed definitions; user words may be overwritten,
// snapshots never are.
type dictionary struct {
	words   map[string][]token
	commits int
}

// definition is a word under construction; nothing it records is visible
// in the dictionary until commit.
type definition struct {
	name    string
	serial  int
	body    []token
	shadows map[string][]token
}

func (d *dictionary) lookup(name string) ([]token, bool) {
	body, defined := d.words[name]
	return body, defined
}

func (d *dictionary) begin(name string) *definition {
	return &definition{
		name:   name,
		serial: d.commits,
	}
}

func (d *dictionary) commit(def *definition) {
	if d.words == nil {
		d.words = make(map[string][]token)
	}
	for key, body := range def.shadows {
		d.words[key] = body
	}
	d.words[def.name] = def.body
	d.commits++
}

// names returns the sorted names of user words, excluding snapshots.
func (d *dictionary) names() []string {
	names := make([]string, 0, len(d.words))
	for name := range d.words {
		if !isShadowKey(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// shadowKeys returns the sorted names of all snapshots.
func (d *dictionary) shadowKeys() []string {
	var keys []string
	for name := range d.words {
		if isShadowKey(name) {
			keys = append(keys, name)
		}
	}
	sort.Strings(keys)
	return keys
}

func (def *definition) record(tok token) {
	def.body = append(def.body, tok)
}

// shadow stages a copy of body, the current expansion of word, returning
// the synthesized key under which it will be committed.
func (def *definition) shadow(word string, body []token) string {
	key := shadowKey(word, def.name, def.serial)
	if def.shadows == nil {
		def.shadows = make(map[string][]token)
	}
	def.shadows[key] = append([]token(nil), body...)
	return key
}

// Synthesized keys contain spaces, which no input token can, so users can
// neither invoke nor redefine them.  The serial is the number of commits
// prior to the definition that made the key, which makes each key unique.
func shadowKey(word, name string, serial int) string {
	return fmt.Sprintf("%s %s %d", word, name, serial)
}

func isShadowKey(name string) bool {
	return strings.IndexByte(name, ' ') >= 0
}
