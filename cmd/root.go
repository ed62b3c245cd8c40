package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// verbosityLevel is the command-line flag for the console log level
	verbosityLevel string
)

var rootCmd = &cobra.Command{
	Use:   "ytup",
	Short: "Upload a video to YouTube from the command line",
	Long: `ytup authenticates against the YouTube Data API and uploads one
video per invocation, with optional thumbnail, shorts formatting and
scheduled publishing. Produced video ids are appended to a record file;
diagnostic detail goes to the log file.`,
	// Running the binary bare performs the upload with defaults, like the
	// upload subcommand.
	RunE:          runUpload,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&verbosityLevel, "log-level", "l", "normal",
		"Set the console logging verbosity level: quiet, normal, verbose, debug")
}
