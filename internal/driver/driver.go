// Package driver wires the scanner, parser, and printer into the single
// entry point the CLI calls (spec §2's pipeline), and runs the printer's
// serialization pass concurrently with a final label-resolution sweep of
// the IR via errgroup — the one place this otherwise single-threaded
// pipeline forks (spec §5), since both read the finished instruction
// list but never mutate it.
package driver

import (
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/ifj25c/internal/cerr"
	"github.com/cwbudde/ifj25c/internal/ir"
	"github.com/cwbudde/ifj25c/internal/parser"
	"github.com/cwbudde/ifj25c/internal/printer"
)

// Compile runs source through the full pipeline and returns its
// IFJcode25 text, or the first diagnostic encountered.
func Compile(source string, trace bool) (string, error) {
	p := parser.New(source, trace)
	result := p.Parse()

	if len(result.Errors) > 0 {
		return "", result.Errors[0]
	}

	list := result.Emitter.List()

	var output string
	var g errgroup.Group
	g.Go(func() error {
		text, err := printer.Sprint(list)
		if err != nil {
			return err
		}
		output = text
		return nil
	})
	g.Go(func() error {
		return checkLabels(list)
	})

	if err := g.Wait(); err != nil {
		return "", err
	}
	return output, nil
}

// checkLabels walks list once, collecting every declared LABEL and every
// JUMP/CALL target, and fails if any target has no matching label — a
// bug in the emitter itself (spec §8's "every emitted jump target
// resolves") rather than a user-facing diagnostic, so it surfaces as an
// internal error.
func checkLabels(list *ir.List) error {
	declared := map[string]bool{}
	var targets []string

	list.Walk(func(n *ir.Instruction) {
		if n.Opcode == ir.OpLabel {
			if lbl, ok := n.Result.(ir.LabelOperand); ok {
				declared[lbl.Name] = true
			}
			return
		}
		if n.Opcode == ir.OpJump || n.Opcode == ir.OpJumpIfEq || n.Opcode == ir.OpJumpIfNeq ||
			n.Opcode == ir.OpJumpIfEqS || n.Opcode == ir.OpJumpIfNeqS || n.Opcode == ir.OpCall {
			if lbl, ok := n.Result.(ir.LabelOperand); ok {
				targets = append(targets, lbl.Name)
			}
		}
	})

	for _, t := range targets {
		if !declared[t] {
			return cerr.InternalErr("unresolved jump/call target %q", t)
		}
	}
	return nil
}
