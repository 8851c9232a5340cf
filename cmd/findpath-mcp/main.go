// Command findpath-mcp serves the find_path tool over the Model Context
// Protocol on standard input and output.
package main

import (
	"fmt"
	"os"

	"github.com/jongio/findpath/logutil"
	"github.com/jongio/findpath/mcptool"
	"github.com/jongio/findpath/version"
	"github.com/spf13/cobra"
)

const name = "findpath-mcp"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	info := version.New(name)
	var output string

	cmd := &cobra.Command{
		Use:           name,
		Short:         "Serve the find_path tool over MCP stdio",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Standard output carries the protocol, so logs go to stderr.
			logutil.SetupLogger(false, logutil.StructuredFromEnv())
			log := logutil.NewLogger(name)
			log.Info("serving", "version", info.Version)
			if err := mcptool.New(mcptool.Options{}).Serve(info.Name, info.Version); err != nil {
				log.Error("server stopped", "error", err)
				return err
			}
			return nil
		},
	}
	cmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format (json)")
	cmd.AddCommand(version.NewCommand(info, &output))
	return cmd
}
