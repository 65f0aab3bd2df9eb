package forth

// builtins maps the lower case name of each built-in word to its code.
var builtins = map[string]func(e *Evaluator){
	"+":    (*Evaluator).add,
	"-":    (*Evaluator).sub,
	"*":    (*Evaluator).mul,
	"/":    (*Evaluator).div,
	"dup":  (*Evaluator).dup,
	"swap": (*Evaluator).swap,
	"drop": (*Evaluator).drop,
	"over": (*Evaluator).over,
}

// Every built-in checks its operands before popping any of them, so a
// failing built-in leaves the stack as it found it.

//// Integer Operations

// Symbol   Name           Function
//    +     binary plus    pop top 2 elements of stack, add, push
func (e *Evaluator) add() { e.need(2); b, a := e.pop(), e.pop(); e.push(a + b) }

// Symbol   Name           Function
//    -     binary minus   pop top 2 elements of stack, subtract, push
func (e *Evaluator) sub() { e.need(2); b, a := e.pop(), e.pop(); e.push(a - b) }

// Symbol   Name           Function
//    *     multiply       pop top 2 elements of stack, multiply, push
func (e *Evaluator) mul() { e.need(2); b, a := e.pop(), e.pop(); e.push(a * b) }

// Symbol   Name           Function
//    /     divide         pop top 2 elements of stack, divide, push
func (e *Evaluator) div() {
	e.need(2)
	if e.stack[len(e.stack)-1] == 0 {
		e.halt(DivisionByZero)
	}
	b, a := e.pop(), e.pop()
	e.push(a / b)
}

// Results wrap around on overflow; division truncates toward zero.

//// Stack Operations

// Name    Function
// dup     push a copy of the top element
func (e *Evaluator) dup() { e.need(1); e.push(e.stack[len(e.stack)-1]) }

// Name    Function
// swap    exchange the top 2 elements
func (e *Evaluator) swap() {
	e.need(2)
	i := len(e.stack) - 1
	e.stack[i-1], e.stack[i] = e.stack[i], e.stack[i-1]
}

// Name    Function
// drop    discard the top element
func (e *Evaluator) drop() { e.need(1); e.pop() }

// Name    Function
// over    push a copy of the second element
func (e *Evaluator) over() { e.need(2); e.push(e.stack[len(e.stack)-2]) }
