package diagnostic

import "fmt"

// Diagnostic is one entry of the conversion diagnostic stream: which name
// a failure is attributed to and why the item was ignored.
type Diagnostic struct {
	// Name is the qualified name or context identifier the failure is
	// attributed to.
	Name string
	// Message is the human-readable rendering of the error.
	Message string
	// Code is the error category, empty when the error carries none.
	Code string
}

// String renders the stream line format: "Ignored <name>: <message>".
func (d Diagnostic) String() string {
	return fmt.Sprintf("Ignored %s: %s", d.Name, d.Message)
}

// Sink is an append-only diagnostic stream.
type Sink interface {
	Append(d Diagnostic)
}
