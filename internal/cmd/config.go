package cmd

import (
	"flag"
	"fmt"
	"io"
)

func newConfigCommand() command {
	return command{
		name:        "config",
		description: "Print the resolved activation configuration",
		run: func(fs *flag.FlagSet, args []string, ctx *AppContext, stdout io.Writer, stderr io.Writer) error {
			if ctx == nil {
				return fmt.Errorf("application context unavailable")
			}
			printConfig(ctx, stdout)
			return nil
		},
	}
}
