package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docnav/internal/sampledocs"
)

var sampleDocsCmd = &cobra.Command{
	Use:   "sample-docs",
	Short: "Generate a sample corpus of categorized .docx files",
	Long: `Sample-docs writes a small set of Finance, HR, and Marketing documents
whose filenames follow the Category_Title convention, ready to feed into
docnav merge.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger(cmd)
		dir, _ := cmd.Flags().GetString("dir")

		created, err := sampledocs.Generate(dir)
		if err != nil {
			return err
		}
		for _, path := range created {
			log.Info("created", "file", filepath.Base(path))
		}
		log.Info("sample corpus ready", "dir", dir, "files", len(created))
		return nil
	},
}

func init() {
	sampleDocsCmd.Flags().String("dir", ".", "directory to write the sample documents into")
	rootCmd.AddCommand(sampleDocsCmd)
}
