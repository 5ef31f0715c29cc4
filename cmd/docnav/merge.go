package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dgallion1/docnav/internal/catalog"
	"github.com/dgallion1/docnav/internal/compose"
	"github.com/dgallion1/docnav/internal/config"
	"github.com/dgallion1/docnav/internal/convert"
	"github.com/dgallion1/docnav/internal/plan"
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge documents into one navigable file",
	Long: `Merge concatenates the input documents into a single .docx with a
clickable menu at the head. Without --inputs, every supported file in the
working directory (minus the output file and Word lock files) is merged in
case-insensitive filename order.`,
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().StringSlice("inputs", nil, "explicit list of files to merge (default: discover in --dir)")
	mergeCmd.Flags().String("dir", ".", "directory to discover input files in")
	mergeCmd.Flags().String("output", "all_documents.docx", "output file path")
	mergeCmd.Flags().String("menu-title", "Menu", "heading text for the navigation menu")
	mergeCmd.Flags().String("back-label", "Back to menu", "label for the back-link at the start of each section")
	mergeCmd.Flags().String("category-sep", "_", "separator between category and document name in filenames")
	mergeCmd.Flags().Bool("dry-run", false, "show what would be merged without writing output")
	mergeCmd.Flags().String("plan", "", "merge plan file to replay instead of discovery")
	mergeCmd.Flags().String("write-plan", "", "with --dry-run, save the resolved run as a plan file")

	viper.BindPFlag("output", mergeCmd.Flags().Lookup("output"))
	viper.BindPFlag("menu_title", mergeCmd.Flags().Lookup("menu-title"))
	viper.BindPFlag("back_label", mergeCmd.Flags().Lookup("back-label"))
	viper.BindPFlag("category_sep", mergeCmd.Flags().Lookup("category-sep"))

	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	log := newLogger(cmd)
	cfg := config.Load()

	inputs, _ := cmd.Flags().GetStringSlice("inputs")
	dir, _ := cmd.Flags().GetString("dir")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	planPath, _ := cmd.Flags().GetString("plan")
	writePlan, _ := cmd.Flags().GetString("write-plan")

	var sources []catalog.Source
	if planPath != "" {
		p, err := plan.Read(planPath)
		if err != nil {
			return err
		}
		applyPlanOptions(cmd, p.Options, &cfg)
		sources = p.Resolve(cfg.CategorySep)
	} else {
		paths, err := catalog.Discover(dir, inputs, cfg.Output)
		if err != nil {
			return err
		}
		sources = catalog.Resolve(paths, cfg.CategorySep)
	}

	menu := catalog.BuildMenu(sources, cfg.MenuTitle)

	if dryRun {
		printDryRun(cmd.OutOrStdout(), sources, menu, cfg.Output)
		if writePlan != "" {
			p := plan.FromSources(sources, plan.Options{
				Output:      cfg.Output,
				MenuTitle:   cfg.MenuTitle,
				BackLabel:   cfg.BackLabel,
				CategorySep: cfg.CategorySep,
			})
			if err := plan.Write(writePlan, p); err != nil {
				return err
			}
			log.Info("plan written", "path", writePlan)
		}
		return nil
	}

	comp, err := compose.Merge(sources, compose.Options{
		MenuTitle: cfg.MenuTitle,
		BackLabel: cfg.BackLabel,
		Convert:   convert.Options{PDFFallbackPdftotext: cfg.PDFFallbackPdftotext},
	})
	if err != nil {
		return err
	}
	if err := comp.WriteFile(cfg.Output); err != nil {
		return err
	}

	log.Info("merged", "sections", comp.Sections(), "output", cfg.Output)
	return nil
}

// applyPlanOptions layers the plan's stored options under any flag the
// user set explicitly on this run.
func applyPlanOptions(cmd *cobra.Command, o plan.Options, cfg *config.Config) {
	if o.Output != "" && !cmd.Flags().Changed("output") {
		cfg.Output = o.Output
	}
	if o.MenuTitle != "" && !cmd.Flags().Changed("menu-title") {
		cfg.MenuTitle = o.MenuTitle
	}
	if o.BackLabel != "" && !cmd.Flags().Changed("back-label") {
		cfg.BackLabel = o.BackLabel
	}
	if o.CategorySep != "" && !cmd.Flags().Changed("category-sep") {
		cfg.CategorySep = o.CategorySep
	}
}

func printDryRun(w io.Writer, sources []catalog.Source, menu catalog.Menu, output string) {
	fmt.Fprintf(w, "Would merge %d files into %s\n", len(sources), output)
	for _, src := range sources {
		fmt.Fprintf(w, "  - %s\n", filepath.Base(src.Path))
	}

	fmt.Fprintf(w, "\nMenu: %s\n", menu.Title)
	for _, g := range menu.Groups {
		name := g.Category
		if name == "" {
			name = "(uncategorized)"
		}
		fmt.Fprintf(w, "\n%s:\n", name)
		for _, e := range g.Entries {
			fmt.Fprintf(w, "  - %s [%s]\n", e.Title, e.Bookmark)
		}
	}
}
