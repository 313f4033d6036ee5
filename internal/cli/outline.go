package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codemapper/codemapper/internal/outline"
)

var (
	outlineOnly     string
	outlineByFile   bool
	outlinePlantUML bool
	outlineStats    bool
)

var outlineCmd = &cobra.Command{
	Use:   "outline <tags-file>",
	Short: "Render class outlines from a ctags JSON tag file",
	Long: `Reads an NDJSON tag stream produced by "codemapper tags" (or ctags
directly) and prints one outline block per class: members with access
marks and types, then methods with signatures.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tags, err := outline.LoadTags(args[0])
		if err != nil {
			return err
		}
		if len(tags) == 0 {
			return fmt.Errorf("no tags in %s; generate them with \"codemapper tags\" first", args[0])
		}

		classes := outline.BuildIndex(tags, outline.DefaultConfig())
		opts := outline.RenderOptions{Only: outlineOnly, ShowFile: outlineByFile}

		if outlinePlantUML {
			fmt.Fprint(cmd.OutOrStdout(), outline.RenderPlantUML(classes, opts))
		} else {
			fmt.Fprint(cmd.OutOrStdout(), outline.RenderText(classes, opts))
		}

		if outlineStats {
			s := outline.CountStats(tags, classes, outline.DefaultConfig())
			fmt.Fprintf(cmd.ErrOrStderr(), "%d tags, %d classes, %d members, %d methods\n",
				s.Tags, s.Classes, s.Members, s.Methods)
		}
		return nil
	},
}

func init() {
	outlineCmd.Flags().StringVar(&outlineOnly, "only", "", "render only the named class")
	outlineCmd.Flags().BoolVar(&outlineByFile, "by-file", false, "show the declaring file under each class")
	outlineCmd.Flags().BoolVar(&outlinePlantUML, "plantuml", false, "emit PlantUML instead of plain text")
	outlineCmd.Flags().BoolVar(&outlineStats, "stats", false, "print index totals to stderr")

	rootCmd.AddCommand(outlineCmd)
}
