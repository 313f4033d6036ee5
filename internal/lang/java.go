package lang

func init() {
	Register(&LanguageSpec{
		Language:       Java,
		FileExtensions: []string{".java"},
		FunctionNodeTypes: []string{
			"method_declaration",
			"constructor_declaration",
		},
		ClassNodeTypes: []string{
			"class_declaration",
			"interface_declaration",
		},
		CallNodeTypes: []string{"method_invocation"},
	})
}
