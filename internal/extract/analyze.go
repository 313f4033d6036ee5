package extract

import (
	"fmt"

	"github.com/codemapper/codemapper/internal/lang"
	"github.com/codemapper/codemapper/internal/parser"
)

// Analysis holds the structural facts of a single source buffer.
type Analysis struct {
	Functions []Definition `json:"functions"`
	Classes   []Definition `json:"classes"`
	Calls     []CallSite   `json:"calls"`
}

// Analyze parses one in-memory source buffer and extracts its definitions
// and call sites in a single pass.
func Analyze(source []byte, l lang.Language) (*Analysis, error) {
	if lang.ForLanguage(l) == nil {
		return nil, fmt.Errorf("unsupported language: %s", l)
	}

	tree, err := parser.Parse(l, source)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	root := tree.RootNode()
	ds := Definitions(root, source, l)
	return &Analysis{
		Functions: ds.Functions,
		Classes:   ds.Classes,
		Calls:     Calls(root, source, l),
	}, nil
}
