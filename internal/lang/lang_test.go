package lang

import "testing"

func TestForExtension(t *testing.T) {
	tests := []struct {
		ext  string
		lang Language
	}{
		{".cpp", CPP},
		{".cc", CPP},
		{".cxx", CPP},
		{".c++", CPP},
		{".hpp", CPP},
		{".hh", CPP},
		{".h", CPP},
		{".hxx", CPP},
		{".py", Python},
		{".js", JavaScript},
		{".jsx", JavaScript},
		{".ts", JavaScript},
		{".tsx", JavaScript},
		{".java", Java},
	}
	for _, tt := range tests {
		spec := ForExtension(tt.ext)
		if spec == nil {
			t.Errorf("ForExtension(%q) = nil, want %s", tt.ext, tt.lang)
			continue
		}
		if spec.Language != tt.lang {
			t.Errorf("ForExtension(%q).Language = %s, want %s", tt.ext, spec.Language, tt.lang)
		}
	}
}

func TestForExtensionCaseInsensitive(t *testing.T) {
	for _, ext := range []string{".CPP", ".Py", ".JAVA", ".Js"} {
		if spec := ForExtension(ext); spec == nil {
			t.Errorf("ForExtension(%q) = nil, want a spec", ext)
		}
	}
}

func TestForLanguage(t *testing.T) {
	for _, l := range AllLanguages() {
		spec := ForLanguage(l)
		if spec == nil {
			t.Errorf("ForLanguage(%s) = nil", l)
		}
	}
}

func TestUnknownExtension(t *testing.T) {
	if spec := ForExtension(".rs"); spec != nil {
		t.Errorf("ForExtension(.rs) should be nil, got %v", spec)
	}
	if _, ok := LanguageForExtension(""); ok {
		t.Error("LanguageForExtension(\"\") should report no language")
	}
}

func TestCPPSpec(t *testing.T) {
	spec := ForLanguage(CPP)
	if spec == nil {
		t.Fatal("CPP spec not registered")
	}
	found := map[string]bool{}
	for _, nt := range spec.FunctionNodeTypes {
		found[nt] = true
	}
	if !found["function_definition"] || !found["declaration"] {
		t.Errorf("CPP FunctionNodeTypes missing expected types: %v", spec.FunctionNodeTypes)
	}
}

func TestJavaScriptSpec(t *testing.T) {
	spec := ForLanguage(JavaScript)
	if spec == nil {
		t.Fatal("JavaScript spec not registered")
	}
	if len(spec.FunctionNodeTypes) != 4 {
		t.Errorf("JavaScript FunctionNodeTypes: got %d, want 4", len(spec.FunctionNodeTypes))
	}
}
