package ports

// Evaluator evaluates REPL inputs against interpreter state that
// persists for the life of the session.
type Evaluator interface {
	Eval(input string) (output string, err error)
}
