package ui

import (
	"github.com/spf13/pflag"
)

type InteractivityLevel int

// InteractivityLevel constants are ordered such that ordering comparisons
// make as much sense as equality comparisons.
const (
	NonInteractive InteractivityLevel = iota
	MinimallyInteractive
	FullyInteractive
)

func Interactivity() InteractivityLevel {
	if !*fullyInteractive && !*minimallyInteractive && *nonInteractive {
		return NonInteractive
	}
	if *fullyInteractive && !*minimallyInteractive && !*nonInteractive {
		return FullyInteractive
	}
	if *fullyInteractive && *nonInteractive {
		Fatal("can't mix --non-interactive and --fully-interactive")
	}
	return MinimallyInteractive // default
}

func InteractivityFlagSet() *pflag.FlagSet {
	set := pflag.NewFlagSet("[interactivity flags]", pflag.ExitOnError)
	set.BoolVar(fullyInteractive, "fully-interactive", false, "fully interactive mode - all prompts")
	set.BoolVar(minimallyInteractive, "minimally-interactive", false, "minimally interactive mode - only prompts with no other source for an answer (default)")
	set.BoolVar(nonInteractive, "non-interactive", false, "non-interactive mode - no prompts")
	return set
}

var fullyInteractive, minimallyInteractive, nonInteractive = new(bool), new(bool), new(bool)
