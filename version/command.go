package version

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewCommand returns a "version" subcommand for info.
//
// outputFormat may point at a persistent --output flag of the parent; "json"
// prints info as an indented JSON object. --quiet prints only the version.
func NewCommand(info *Info, outputFormat *string) *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: fmt.Sprintf("Display %s version information", info.Name),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var format string
			if outputFormat != nil {
				format = *outputFormat
			}
			return write(cmd.OutOrStdout(), info, format, quiet)
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print version number")
	return cmd
}

func write(w io.Writer, info *Info, format string, quiet bool) error {
	switch {
	case format == "json":
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode version info: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case quiet:
		_, err := fmt.Fprintln(w, info.Version)
		return err
	default:
		_, err := fmt.Fprintln(w, info.String())
		return err
	}
}
