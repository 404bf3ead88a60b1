// Package token defines the lexical token vocabulary of IFJ25.
package token

import "fmt"

// Position identifies a single point in the source stream.
type Position struct {
	Line   int
	Column int
	Offset int
}

// String renders the position as "line:column", the form used throughout
// diagnostics.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
