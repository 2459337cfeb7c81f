package cmd

import (
	"flag"
	"fmt"
	"io"

	"github.com/offlinefirst/dragscroll/pkg/tap"
)

func newCheckCommand() command {
	return command{
		name:        "check",
		description: "Report event tap support and accessibility permission state",
		run:         runCheck,
	}
}

var detectEnvironment = tap.DetectEnvironment

func runCheck(fs *flag.FlagSet, args []string, ctx *AppContext, stdout io.Writer, stderr io.Writer) error {
	if ctx == nil {
		return fmt.Errorf("application context unavailable")
	}

	env := detectEnvironment(nil)
	ctx.Logger.Debug("environment detected", "provider", env.Provider, "available", env.Available, "permission", env.Permission)

	fmt.Fprintf(stdout, "Event tap: provider=%s available=%t permission=%s\n", env.Provider, env.Available, env.Permission)
	if env.Message != "" {
		fmt.Fprintf(stdout, "  %s\n", env.Message)
	}
	if env.Guidance != "" {
		fmt.Fprintf(stdout, "  guidance: %s\n", env.Guidance)
	}

	subs := ctx.Config.Activation.Subscriptions()
	names := make([]string, 0, len(subs))
	for _, s := range subs {
		names = append(names, s.String())
	}
	fmt.Fprintf(stdout, "Subscribed events: %v\n", names)

	if len(ctx.Config.Warnings) > 0 {
		fmt.Fprintf(stdout, "Configuration warnings (%s):\n", ctx.Config.Source)
		for _, warning := range ctx.Config.Warnings {
			fmt.Fprintf(stdout, "  - %s\n", warning)
		}
	}
	return nil
}
