package lang

func init() {
	Register(&LanguageSpec{
		Language:       CPP,
		FileExtensions: []string{".cpp", ".cc", ".cxx", ".c++", ".hpp", ".hh", ".h", ".hxx"},
		FunctionNodeTypes: []string{
			"function_definition",
			"declaration",
		},
		ClassNodeTypes: []string{
			"class_specifier",
			"struct_specifier",
		},
		CallNodeTypes: []string{"call_expression"},
	})
}
