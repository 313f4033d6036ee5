package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codemapper/codemapper/internal/ctags"
)

var (
	tagsOutput    string
	tagsLanguages []string
)

var tagsCmd = &cobra.Command{
	Use:   "tags <dir> [-- extra ctags args...]",
	Short: "Generate a JSON tag file with universal-ctags",
	Long: `Runs universal-ctags recursively over the given directory with JSON
output and the extended fields the outline command needs. Arguments
after "--" are passed to ctags verbatim. The ctags exit code becomes
this command's exit code.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := ctags.Generate(cmd.Context(), args[0], ctags.Options{
			OutputFile: tagsOutput,
			Languages:  tagsLanguages,
			ExtraArgs:  args[1:],
		})
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
		}
		if code != 0 {
			os.Exit(code)
		}
		return nil
	},
}

func init() {
	tagsCmd.Flags().StringVarP(&tagsOutput, "output", "o", "tags.json", "tag file to write")
	tagsCmd.Flags().StringSliceVarP(&tagsLanguages, "languages", "l", []string{"C++", "Python", "JavaScript", "Java"}, "languages to scan")

	rootCmd.AddCommand(tagsCmd)
}
