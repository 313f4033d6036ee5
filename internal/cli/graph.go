package cli

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/codemapper/codemapper/internal/callgraph"
)

var (
	graphFormat   string
	graphOut      string
	graphIndent   string
	graphIgnore   []string
	graphProgress bool
)

var graphCmd = &cobra.Command{
	Use:   "graph <dir>",
	Short: "Build a call graph for a source tree",
	Long: `Parses every supported file under the given directory, attributes each
call site to its enclosing function, and resolves callee names against
definitions in the same file. Output is JSON or Graphviz DOT.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := &callgraph.Options{IgnorePatterns: graphIgnore}

		var bar *progressbar.ProgressBar
		if graphProgress {
			opts.OnDiscover = func(total int) {
				bar = progressbar.NewOptions(total,
					progressbar.OptionSetDescription("Parsing files"),
					progressbar.OptionSetWidth(40),
					progressbar.OptionShowCount(),
					progressbar.OptionSetWriter(os.Stderr),
				)
			}
			opts.OnFile = func(string) {
				if bar != nil {
					bar.Add(1)
				}
			}
		}

		g, err := callgraph.Build(cmd.Context(), args[0], opts)
		if err != nil {
			return err
		}
		if bar != nil {
			bar.Finish()
			fmt.Fprintln(os.Stderr)
		}

		out := cmd.OutOrStdout()
		if graphOut != "" {
			f, err := os.Create(graphOut)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}

		switch graphFormat {
		case "json":
			return callgraph.WriteJSON(out, g, graphIndent)
		case "ndjson":
			return callgraph.WriteEdgesNDJSON(out, g)
		case "dot":
			return callgraph.WriteDOT(out, g)
		default:
			return fmt.Errorf("unknown format %q (want json, ndjson, or dot)", graphFormat)
		}
	},
}

func init() {
	graphCmd.Flags().StringVarP(&graphFormat, "format", "f", "json", "output format: json, ndjson, or dot")
	graphCmd.Flags().StringVarP(&graphOut, "out", "o", "", "write output to file instead of stdout")
	graphCmd.Flags().StringVar(&graphIndent, "indent", "  ", "JSON indent string")
	graphCmd.Flags().StringSliceVar(&graphIgnore, "ignore", nil, "glob patterns to skip (repeatable)")
	graphCmd.Flags().BoolVar(&graphProgress, "progress", false, "show a progress bar on stderr")

	rootCmd.AddCommand(graphCmd)
}
