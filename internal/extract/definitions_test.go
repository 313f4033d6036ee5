package extract

import (
	"testing"

	"github.com/codemapper/codemapper/internal/lang"
	"github.com/codemapper/codemapper/internal/parser"
)

func parseSource(t *testing.T, source string, l lang.Language) (DefinitionSet, []CallSite) {
	t.Helper()
	tree, err := parser.Parse(l, []byte(source))
	if err != nil {
		t.Fatalf("parse %s: %v", l, err)
	}
	defer tree.Close()
	root := tree.RootNode()
	return Definitions(root, []byte(source), l), Calls(root, []byte(source), l)
}

const pythonSource = `def outer():
    def inner():
        helper()
    inner()

def helper():
    pass

class Greeter:
    def greet(self, name):
        print(self.fmt(name))
`

func TestPythonDefinitions(t *testing.T) {
	ds, _ := parseSource(t, pythonSource, lang.Python)

	wantFuncs := []struct {
		name       string
		start, end int
	}{
		{"outer", 1, 4},
		{"inner", 2, 3},
		{"helper", 6, 7},
		{"greet", 10, 11},
	}
	if len(ds.Functions) != len(wantFuncs) {
		t.Fatalf("functions: got %d, want %d: %+v", len(ds.Functions), len(wantFuncs), ds.Functions)
	}
	for i, want := range wantFuncs {
		got := ds.Functions[i]
		if got.Name != want.name || got.StartLine != want.start || got.EndLine != want.end {
			t.Errorf("functions[%d] = %+v, want {%s %d %d}", i, got, want.name, want.start, want.end)
		}
		if got.Kind != KindFunction {
			t.Errorf("functions[%d].Kind = %q, want %q", i, got.Kind, KindFunction)
		}
	}

	if len(ds.Classes) != 1 || ds.Classes[0].Name != "Greeter" {
		t.Fatalf("classes = %+v, want [Greeter]", ds.Classes)
	}
	if ds.Classes[0].Kind != KindClass {
		t.Errorf("class Kind = %q, want %q", ds.Classes[0].Kind, KindClass)
	}
}

const cppSource = `int add(int a, int b) { return a + b; }
int scale(int x);
int counter;

class Calculator {
    int value;
};

struct Point {
    int x;
    int y;
};

int Calculator::multiply(int x, int y) {
    return add(x, y);
}
`

func TestCPPDefinitions(t *testing.T) {
	ds, _ := parseSource(t, cppSource, lang.CPP)

	names := make([]string, 0, len(ds.Functions))
	for _, d := range ds.Functions {
		names = append(names, d.Name)
	}
	want := []string{"add", "scale", "multiply"}
	if len(names) != len(want) {
		t.Fatalf("function names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("function names[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	// Qualified method name is truncated to the last segment.
	if ds.Functions[2].Name != "multiply" {
		t.Errorf("qualified name not truncated: %q", ds.Functions[2].Name)
	}

	classNames := make([]string, 0, len(ds.Classes))
	for _, d := range ds.Classes {
		classNames = append(classNames, d.Name)
	}
	wantClasses := []string{"Calculator", "Point"}
	if len(classNames) != 2 || classNames[0] != wantClasses[0] || classNames[1] != wantClasses[1] {
		t.Errorf("class names = %v, want %v", classNames, wantClasses)
	}
}

const jsSource = `function outer() {
  const inner = () => {
    helper();
  };
  inner();
  obj.method(1);
}

class Widget {
  render() {
    return this.draw();
  }
}
`

func TestJavaScriptDefinitions(t *testing.T) {
	ds, _ := parseSource(t, jsSource, lang.JavaScript)

	if len(ds.Functions) != 3 {
		t.Fatalf("functions: got %d, want 3: %+v", len(ds.Functions), ds.Functions)
	}
	if ds.Functions[0].Name != "outer" {
		t.Errorf("functions[0].Name = %q, want outer", ds.Functions[0].Name)
	}
	// The arrow function is anonymous: span kept, name empty.
	if ds.Functions[1].Name != "" {
		t.Errorf("functions[1].Name = %q, want empty (anonymous)", ds.Functions[1].Name)
	}
	if ds.Functions[1].StartLine != 2 || ds.Functions[1].EndLine != 4 {
		t.Errorf("anonymous span = %d-%d, want 2-4", ds.Functions[1].StartLine, ds.Functions[1].EndLine)
	}
	if ds.Functions[2].Name != "render" {
		t.Errorf("functions[2].Name = %q, want render", ds.Functions[2].Name)
	}

	if len(ds.Classes) != 1 || ds.Classes[0].Name != "Widget" {
		t.Errorf("classes = %+v, want [Widget]", ds.Classes)
	}
}

const javaSource = `class Greeter {
    Greeter() {
        init();
    }
    void greet(String name) {
        System.out.println(format(name));
    }
}
`

func TestJavaDefinitions(t *testing.T) {
	ds, _ := parseSource(t, javaSource, lang.Java)

	if len(ds.Functions) != 2 {
		t.Fatalf("functions: got %d, want 2: %+v", len(ds.Functions), ds.Functions)
	}
	if ds.Functions[0].Name != "Greeter" {
		t.Errorf("constructor name = %q, want Greeter", ds.Functions[0].Name)
	}
	if ds.Functions[1].Name != "greet" {
		t.Errorf("method name = %q, want greet", ds.Functions[1].Name)
	}
	if len(ds.Classes) != 1 || ds.Classes[0].Name != "Greeter" {
		t.Errorf("classes = %+v, want [Greeter]", ds.Classes)
	}
}

func TestDefinitionLineInvariant(t *testing.T) {
	sources := map[lang.Language]string{
		lang.Python:     pythonSource,
		lang.CPP:        cppSource,
		lang.JavaScript: jsSource,
		lang.Java:       javaSource,
	}
	for l, src := range sources {
		ds, _ := parseSource(t, src, l)
		for _, d := range ds.All() {
			if d.StartLine < 1 || d.EndLine < d.StartLine {
				t.Errorf("%s: definition %+v violates end >= start >= 1", l, d)
			}
		}
	}
}

func TestDefinitionsUnsupportedLanguage(t *testing.T) {
	tree, err := parser.Parse(lang.Python, []byte("def f():\n    pass\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	defer tree.Close()

	ds := Definitions(tree.RootNode(), []byte("def f():\n    pass\n"), lang.Language("cobol"))
	if len(ds.Functions) != 0 || len(ds.Classes) != 0 {
		t.Errorf("unsupported language should yield empty set, got %+v", ds)
	}
}
