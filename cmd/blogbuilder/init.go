package main

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Kush-Singh-26/blogbuilder/internal/scaffold"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init <dir>",
	Short: "Create a sample blog project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return scaffold.Init(afero.NewOsFs(), args[0], nil)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
