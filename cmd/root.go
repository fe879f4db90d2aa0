package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"snowreminder/internal/logging"
)

var debugMode bool

// rootCmd represents the base command for the snowreminder application
var rootCmd = &cobra.Command{
	Use:   "snowreminder",
	Short: "Emails a parking reminder for upcoming snowboarding weekends",
	Long: `snowreminder polls Google Calendar for events whose titles mention
snowboarding and that fall on a Saturday or Sunday. When such an event is
within the next 7 days, it sends a parking reminder email.

It can run as:
  - A one-shot check (default), suitable for external schedulers
  - A daemon that runs the check on a cron schedule (serve)`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(debugMode)
	},
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "snowreminder version %s\n" .Version}}`)

	// If no subcommand is provided, run the check command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "check")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
}
