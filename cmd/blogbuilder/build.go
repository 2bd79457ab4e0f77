package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Kush-Singh-26/blogbuilder/builder/run"
)

var buildOpts run.RunOptions

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build <dir>",
	Short: "Build the blog of a project directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return run.Run(ctx, args[0], buildOpts)
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().BoolVar(&buildOpts.Compress, "compress", false, "Minify generated HTML")
	buildCmd.Flags().BoolVarP(&buildOpts.Watch, "watch", "w", false, "Rebuild when content, resources or templates change")
}
