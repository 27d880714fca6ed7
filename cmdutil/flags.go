package cmdutil

import (
	"fmt"

	"github.com/cloudanix/dbonboard/ui"
	"github.com/spf13/pflag"
)

// QuietFlag switches ui into quiet mode the moment it's parsed, which is as
// early as suppression can start.
func QuietFlag() *pflag.Flag {
	return &pflag.Flag{
		Name:        "quiet",
		Shorthand:   "q",
		Usage:       "suppress status and progress output",
		Value:       &quietFlag{},
		DefValue:    "false",
		NoOptDefVal: "true",
	}
}

type quietFlag struct {
	quiet bool
}

func (q *quietFlag) Set(s string) error {
	old := q.quiet
	if q.quiet = s == "true"; q.quiet {
		ui.Quiet()
	} else if old {
		return fmt.Errorf("can't turn off quiet mode")
	}
	return nil
}

func (q *quietFlag) String() string {
	if q.quiet {
		return "true"
	}
	return "false"
}

func (*quietFlag) Type() string {
	return "bool"
}
