package outline

import (
	"fmt"
	"strings"
)

// RenderOptions controls text and diagram rendering.
type RenderOptions struct {
	// Only restricts output to the named class; empty renders all.
	Only string
	// ShowFile adds the declaring file path under each class header.
	ShowFile bool
}

func accessMark(access string) string {
	switch access {
	case "public":
		return "+"
	case "private":
		return "-"
	case "protected":
		return "#"
	default:
		return "~"
	}
}

func memberLine(t Tag) string {
	line := fmt.Sprintf("%s %s", accessMark(t.Access), t.Name)
	if typ := typeName(t); typ != "" {
		line += ": " + typ
	}
	return line
}

func methodLine(t Tag) string {
	sig := t.Signature
	if sig == "" {
		sig = "()"
	}
	return fmt.Sprintf("%s %s%s", accessMark(t.Access), t.Name, sig)
}

func selectClasses(classes []*Class, only string) []*Class {
	if only == "" {
		return classes
	}
	for _, c := range classes {
		if c.Name == only {
			return []*Class{c}
		}
	}
	return nil
}

// RenderText renders the index as an indented outline, one class per
// block, members before methods, both in declaration order.
func RenderText(classes []*Class, opts RenderOptions) string {
	var b strings.Builder
	for _, c := range selectClasses(classes, opts.Only) {
		fmt.Fprintf(&b, "class %s\n", c.Name)
		if opts.ShowFile && c.Decl.Path != "" {
			fmt.Fprintf(&b, "  ~ file: %s\n", c.Decl.Path)
		}
		for _, m := range c.Members {
			fmt.Fprintf(&b, "  %s\n", memberLine(m))
		}
		for _, m := range c.Methods {
			fmt.Fprintf(&b, "  %s\n", methodLine(m))
		}
	}
	return b.String()
}

// RenderPlantUML renders the same outline between @startuml/@enduml
// markers, one class block per class.
func RenderPlantUML(classes []*Class, opts RenderOptions) string {
	var b strings.Builder
	b.WriteString("@startuml\n")
	for _, c := range selectClasses(classes, opts.Only) {
		fmt.Fprintf(&b, "class %s {\n", c.Name)
		for _, m := range c.Members {
			fmt.Fprintf(&b, "  %s\n", memberLine(m))
		}
		for _, m := range c.Methods {
			fmt.Fprintf(&b, "  %s\n", methodLine(m))
		}
		b.WriteString("}\n")
	}
	b.WriteString("@enduml\n")
	return b.String()
}
