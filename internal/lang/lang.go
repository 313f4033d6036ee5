package lang

import "strings"

// Language represents a supported programming language.
type Language string

const (
	CPP        Language = "cpp"
	Python     Language = "python"
	JavaScript Language = "javascript"
	Java       Language = "java"
)

// AllLanguages returns all supported languages.
func AllLanguages() []Language {
	return []Language{CPP, Python, JavaScript, Java}
}

// LanguageSpec defines the tree-sitter node types for a language.
// This table is the single place where per-language variance lives:
// adding a language means registering one new spec.
type LanguageSpec struct {
	Language       Language
	FileExtensions []string

	// FunctionNodeTypes lists AST node kinds treated as function definitions.
	FunctionNodeTypes []string
	// ClassNodeTypes lists AST node kinds treated as class-like definitions.
	ClassNodeTypes []string
	// CallNodeTypes lists AST node kinds treated as call expressions.
	CallNodeTypes []string
}

// registry maps file extensions to language specs.
var registry = map[string]*LanguageSpec{}

// Register adds a LanguageSpec to the global registry.
func Register(spec *LanguageSpec) {
	for _, ext := range spec.FileExtensions {
		registry[ext] = spec
	}
}

// ForExtension returns the LanguageSpec for a file extension (e.g. ".py").
// Extension matching is case-insensitive.
func ForExtension(ext string) *LanguageSpec {
	return registry[strings.ToLower(ext)]
}

// ForLanguage returns the LanguageSpec for a language.
func ForLanguage(l Language) *LanguageSpec {
	for _, spec := range registry {
		if spec.Language == l {
			return spec
		}
	}
	return nil
}

// LanguageForExtension returns the Language for a file extension.
func LanguageForExtension(ext string) (Language, bool) {
	spec := ForExtension(ext)
	if spec == nil {
		return "", false
	}
	return spec.Language, true
}
