package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/codemapper/codemapper/internal/lang"
	"github.com/codemapper/codemapper/internal/parser"
)

var astCmd = &cobra.Command{
	Use:   "ast <file>",
	Short: "Dump the syntax tree of a source file",
	Long: `Parses a single file and prints its syntax tree, one node per line
with indentation showing nesting. Useful for checking which node kinds a
grammar produces before adjusting extraction tables.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, ok := lang.LanguageForExtension(filepath.Ext(args[0]))
		if !ok {
			return fmt.Errorf("unsupported file extension %q", filepath.Ext(args[0]))
		}
		source, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		tree, err := parser.Parse(l, source)
		if err != nil {
			return err
		}
		defer tree.Close()

		printNode(cmd, tree.RootNode(), source, 0)
		return nil
	},
}

func printNode(cmd *cobra.Command, node *tree_sitter.Node, source []byte, depth int) {
	if node == nil {
		return
	}
	text := parser.NodeText(node, source)
	if len(text) > 60 {
		text = text[:60] + "..."
	}
	text = strings.ReplaceAll(text, "\n", "\\n")
	fmt.Fprintf(cmd.OutOrStdout(), "%s%s [%d-%d] %q\n",
		strings.Repeat("  ", depth), node.Kind(),
		node.StartPosition().Row+1, node.EndPosition().Row+1, text)
	for i := uint(0); i < node.ChildCount(); i++ {
		printNode(cmd, node.Child(i), source, depth+1)
	}
}

func init() {
	rootCmd.AddCommand(astCmd)
}
