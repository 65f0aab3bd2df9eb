/* Package forth: a toy FORTH evaluator

FORTH programs are sequences of whitespace separated words.  Numbers are
pushed onto a value stack; every other word names an operation on that
stack.  This evaluator knows a handful of built-in words, and lets users
define new ones:

	: square dup * ;
	3 square

leaves 9 on the stack.

Built-in words are:

	Symbol   Function
	   +     pop top 2 elements of stack, add, push
	   -     pop top 2 elements of stack, subtract, push
	   *     pop top 2 elements of stack, multiply, push
	   /     pop top 2 elements of stack, divide, push
	  dup    push a copy of the top element
	  swap   exchange the top 2 elements
	  drop   discard the top element
	  over   push a copy of the second element

Words are case-insensitive; built-ins may be redefined, and a definition may
refer to the prior meaning of the very word being defined:

	: foo dup ;
	: foo foo 1 + ;
	3 foo

leaves 3 4 on the stack.

Definitions capture the meaning of the words they use at the time they are
defined.  When a definition refers to an existing user word, that word's
current expansion is copied into the dictionary under a synthesized name,
and the definition refers to the copy.  Later redefinitions overwrite only
the user facing name, never the copies, so no committed definition changes
meaning.  Built-ins used in a definition are pinned in the same way.

Definitions are not compiled: a word expands lazily into its recorded tokens
each time it runs.  Expansion pushes those tokens back onto the front of the
evaluator's work queue, rather than recursing through Go's stack.

Each call to Eval processes exactly one line; a definition must be closed by
; within the line that opened it.
*/
package forth
