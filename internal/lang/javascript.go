package lang

// The JavaScript grammar also covers .ts/.tsx sources. Outline-level
// extraction does not need type annotations, so a dedicated TypeScript
// grammar buys nothing here.
func init() {
	Register(&LanguageSpec{
		Language:       JavaScript,
		FileExtensions: []string{".js", ".jsx", ".ts", ".tsx"},
		FunctionNodeTypes: []string{
			"function_declaration",
			"method_definition",
			"arrow_function",
			"function_expression",
		},
		ClassNodeTypes: []string{"class_declaration"},
		CallNodeTypes:  []string{"call_expression"},
	})
}
