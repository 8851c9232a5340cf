package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// newCommand builds the root command. Arguments must already be normalized.
func (a *App) newCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:                   a.Binary + " [-c] [-m <manifest>] [-nologo] [-o] [-v] [-xm] [-?] <filename>",
		Short:                 "Locate a file the way the loader searches for it",
		Version:               a.Info.Version,
		Args:                  cobra.ArbitraryArgs,
		SilenceErrors:         true,
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return &UsageError{Message: MessageMissingFileName}
			}
			// The last name wins.
			opts.FileName = args[len(args)-1]

			a.logo(opts)
			return a.find(cmd.Context(), opts)
		},
	}

	cmd.SetOut(a.Out.Out)
	cmd.SetErr(a.Out.Err)
	cmd.SetVersionTemplate(a.Info.String() + "\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Message: err.Error()}
	})
	cmd.SetHelpFunc(func(*cobra.Command, []string) {
		a.logo(opts)
		a.Out.Help(a.helpData())
	})

	bindFlags(cmd.Flags(), opts)

	return cmd
}

// bindFlags registers the canonical long flags on f.
func bindFlags(f *pflag.FlagSet, opts *Options) {
	f.SortFlags = false
	f.BoolVar(&opts.Copy, FlagCopy, false, "Copy path to the clipboard")
	f.StringVar(&opts.Manifest, FlagManifest, "", "Search using dependencies in `manifest`")
	f.BoolVar(&opts.NoLogo, FlagNoLogo, false, "Suppress logo")
	f.BoolVar(&opts.Open, FlagOpen, false, "Open containing folder in the file manager")
	f.BoolVar(&opts.Verbose, FlagVerbose, false, "Verbose mode")
	f.BoolVar(&opts.ExtractManifest, FlagExtract, false, "Extract manifest from PE image")
	f.BoolVar(&opts.Help, FlagHelp, false, "Show this help")
}
