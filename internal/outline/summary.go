package outline

import "log/slog"

// Stats summarizes one tag stream.
type Stats struct {
	Tags    int `json:"tags"`
	Classes int `json:"classes"`
	Members int `json:"members"`
	Methods int `json:"methods"`
}

// Summary bundles both renderings of a tag file with its stats.
type Summary struct {
	Text     string
	PlantUML string
	Stats    Stats
}

// CountStats counts classes from the index and member/method kinds across
// the whole stream. File-scoped functions count toward Methods even
// though no class outline shows them.
func CountStats(tags []Tag, classes []*Class, cfg Config) Stats {
	s := Stats{Tags: len(tags), Classes: len(classes)}
	for _, t := range tags {
		switch {
		case cfg.MemberKinds[t.Kind]:
			s.Members++
		case cfg.MethodKinds[t.Kind]:
			s.Methods++
		}
	}
	return s
}

// Summarize loads a tag file, builds the class index, and returns both
// renderings together with the stream's stats. An empty tag file yields
// zero stats and an empty text outline.
func Summarize(path string, cfg Config) (*Summary, error) {
	tags, err := LoadTags(path)
	if err != nil {
		return nil, err
	}
	classes := BuildIndex(tags, cfg)
	s := CountStats(tags, classes, cfg)
	slog.Info("outline.summary",
		"tags", s.Tags, "classes", s.Classes,
		"members", s.Members, "methods", s.Methods)
	return &Summary{
		Text:     RenderText(classes, RenderOptions{}),
		PlantUML: RenderPlantUML(classes, RenderOptions{}),
		Stats:    s,
	}, nil
}
