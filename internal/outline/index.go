package outline

// Config classifies tag kinds when building the class index. Threading it
// through explicitly keeps reclassification local to a call instead of a
// process-wide setting.
type Config struct {
	ClassKinds  map[string]bool
	MemberKinds map[string]bool
	MethodKinds map[string]bool
}

// DefaultConfig covers the kinds universal-ctags emits for the supported
// language families.
func DefaultConfig() Config {
	return Config{
		ClassKinds:  map[string]bool{"class": true, "struct": true, "interface": true},
		MemberKinds: map[string]bool{"member": true},
		MethodKinds: map[string]bool{"method": true, "function": true},
	}
}

// Class is one entry of the index: the declaration row plus the rows
// scoped to it, in tag-stream order.
type Class struct {
	Name    string
	Decl    Tag
	Members []Tag
	Methods []Tag
}

// BuildIndex groups tags into classes. Class order is first-seen order in
// the stream. A row attaches to a class only when its scope names that
// class exactly and it carries a scopeKind; rows that merely share the
// name at file scope stay out.
func BuildIndex(tags []Tag, cfg Config) []*Class {
	var classes []*Class
	byName := map[string]*Class{}

	for _, t := range tags {
		if cfg.ClassKinds[t.Kind] && byName[t.Name] == nil {
			c := &Class{Name: t.Name, Decl: t}
			byName[t.Name] = c
			classes = append(classes, c)
		}
	}

	for _, t := range tags {
		if t.Scope == "" || t.ScopeKind == "" {
			continue
		}
		c := byName[t.Scope]
		if c == nil {
			continue
		}
		switch {
		case cfg.MemberKinds[t.Kind]:
			c.Members = append(c.Members, t)
		case cfg.MethodKinds[t.Kind]:
			c.Methods = append(c.Methods, t)
		}
	}

	return classes
}
