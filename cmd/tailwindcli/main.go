// Command tailwindcli is a thin passthrough to the embedded tailwindcss
// binary: every argument is handed to the tool untouched and its output and
// exit code are relayed back, so it can stand in for a locally installed
// tailwindcss in scripts and makefiles.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aexvir/tailwindcli"
)

var rootCmd = &cobra.Command{
	Use:   "tailwindcli [tailwindcss arguments]",
	Short: "Run the embedded Tailwind CSS standalone CLI",
	Long: `tailwindcli runs the Tailwind CSS standalone CLI bundled inside this
binary, no install needed. All arguments are passed through to tailwindcss
verbatim; run with --help to see the tool's own usage.`,
	Version: tailwindcli.Version,
	// the wrapped tool owns the command line; nothing gets interpreted here
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := tailwindcli.Run(cmd.Context(), args)
		if out != nil {
			// a cleanup failure still carries the tool's output; print it
			// before reporting the leak
			relay(out.Stdout, out.Stderr)
		}
		return err
	},
}

func relay(stdout, stderr string) {
	if stdout != "" {
		fmt.Fprintln(os.Stdout, stdout)
	}
	if stderr != "" {
		fmt.Fprintln(os.Stderr, stderr)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exit *tailwindcli.ExitError
		if errors.As(err, &exit) {
			relay(exit.Stdout, exit.Stderr)
			os.Exit(exit.Code)
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
