package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docnav/internal/inspect"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE...",
	Short: "Report paragraph, heading, and word counts for .docx files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, path := range args {
			rep, err := inspect.File(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s: %d paragraphs, %d headings, %d words\n",
				rep.Path, rep.Paragraphs, rep.Headings, rep.Words)
			if rep.FirstHeading != "" {
				fmt.Fprintf(out, "  first heading: %s\n", rep.FirstHeading)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
