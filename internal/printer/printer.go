// Package printer serializes an ir.List into the textual IFJcode25 dialect
// (spec §4.9): a header line, the collected global-variable definitions,
// then the main instruction list in cursor order.
package printer

import (
	"io"
	"strings"

	"github.com/cwbudde/ifj25c/internal/ir"
)

const header = ".IFJcode25"

// Print writes list to w in IFJcode25 textual form.
func Print(w io.Writer, list *ir.List) error {
	var b strings.Builder
	b.WriteString(header)
	b.WriteByte('\n')

	for _, n := range list.GlobalDefs {
		b.WriteString(renderInstruction(n))
		b.WriteByte('\n')
	}

	list.Walk(func(n *ir.Instruction) {
		b.WriteString(renderInstruction(n))
		b.WriteByte('\n')
	})

	_, err := io.WriteString(w, b.String())
	return err
}

// renderInstruction renders a single instruction as one line of text.
// NO_OP renders as a blank line (visual separation); COMMENT renders as
// the source text after the `#` sigil.
func renderInstruction(n *ir.Instruction) string {
	switch n.Opcode {
	case ir.OpNoOp:
		return ""
	case ir.OpComment:
		text := ""
		if c, ok := n.Result.(ir.CommentText); ok {
			text = c.Text
		}
		return "# " + text
	}

	parts := []string{string(n.Opcode)}
	for _, operand := range []ir.Operand{n.Result, n.Arg1, n.Arg2} {
		if operand == nil {
			continue
		}
		parts = append(parts, operand.Render())
	}
	return strings.Join(parts, " ")
}

// Sprint is a convenience wrapper returning the printed text directly.
func Sprint(list *ir.List) (string, error) {
	var b strings.Builder
	if err := Print(&b, list); err != nil {
		return "", err
	}
	return b.String(), nil
}
