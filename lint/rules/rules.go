// Package rules collects the concrete PatternLinter implementations Harper
// ships with.
package rules

import "github.com/harper-go/harper/lint"

// All returns every built-in rule, in the order the CLI's lint command
// runs them — a flat "list of commands" shape, the same as the CLI's
// struct of subcommands.
func All() []lint.PatternLinter {
	return []lint.PatternLinter{
		NewThenThan(),
		NewItsIts(),
		NewWhoWhom(),
		NewALotAlot(),
	}
}
