// Package discover walks a source tree and returns the files whose
// extension maps to a supported language. I/O problems on individual
// entries skip that entry; they never abort the walk.
package discover

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"

	"github.com/codemapper/codemapper/internal/lang"
)

// ignoreDirs are directory names skipped during discovery.
var ignoreDirs = map[string]bool{
	".git": true, ".hg": true, ".svn": true,
	".idea": true, ".vscode": true, ".cache": true,
	"__pycache__": true, ".mypy_cache": true, ".pytest_cache": true,
	".venv": true, "venv": true, "env": true,
	"node_modules": true, "bower_components": true,
	"build": true, "dist": true, "target": true, "out": true,
	"vendor": true, "bin": true, "obj": true,
}

// FileInfo represents a discovered source file.
type FileInfo struct {
	Path     string        // absolute path
	RelPath  string        // relative to the walk root
	Language lang.Language // detected language
}

// Options configures file discovery.
type Options struct {
	// IgnorePatterns are glob patterns matched against directory names
	// and slash-separated relative paths.
	IgnorePatterns []string
}

// Discover walks root and returns all supported source files in walk order.
// A missing root is an input error and fails fast.
func Discover(ctx context.Context, root string, opts *Options) ([]FileInfo, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("source directory %q: %w", root, err)
	}

	var ignore []glob.Glob
	if opts != nil {
		for _, pattern := range opts.IgnorePatterns {
			g, gErr := glob.Compile(pattern)
			if gErr != nil {
				return nil, fmt.Errorf("ignore pattern %q: %w", pattern, gErr)
			}
			ignore = append(ignore, g)
		}
	}

	var files []FileInfo
	err = filepath.Walk(root, func(path string, info os.FileInfo, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			return filepath.SkipDir
		}

		rel, _ := filepath.Rel(root, path)
		rel = filepath.ToSlash(rel)

		if info.IsDir() {
			if path != root && shouldSkipDir(info.Name(), rel, ignore) {
				return filepath.SkipDir
			}
			return nil
		}

		if matchesAny(ignore, info.Name()) || matchesAny(ignore, rel) {
			return nil
		}

		l, ok := lang.LanguageForExtension(filepath.Ext(path))
		if ok {
			files = append(files, FileInfo{
				Path:     path,
				RelPath:  rel,
				Language: l,
			})
		}
		return nil
	})

	return files, err
}

func shouldSkipDir(name, rel string, ignore []glob.Glob) bool {
	if ignoreDirs[name] {
		return true
	}
	return matchesAny(ignore, name) || matchesAny(ignore, rel)
}

func matchesAny(patterns []glob.Glob, s string) bool {
	for _, g := range patterns {
		if g.Match(s) {
			return true
		}
	}
	return false
}
