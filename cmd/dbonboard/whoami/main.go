package whoami

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudanix/dbonboard/awscfg"
	"github.com/cloudanix/dbonboard/cmdutil"
	"github.com/cloudanix/dbonboard/jsonutil"
	"github.com/cloudanix/dbonboard/ui"
	"github.com/spf13/cobra"
)

func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "print the caller's AWS identity",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			Main(cmdutil.Main(cmd, args))
		},
		DisableFlagsInUseLine: true,
	}
}

func Main(ctx context.Context, cfg *awscfg.Config, _ *cobra.Command, _ []string, w io.Writer) {
	identity, err := cfg.Identity(ctx)
	ui.Must(err)
	fmt.Fprintln(w, jsonutil.MustString(identity))
}
