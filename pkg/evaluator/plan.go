package evaluator

// PlanEntry describes where one template will be rendered.
type PlanEntry struct {
	Source string `json:"source" yaml:"source" toml:"source"`
	Dest   string `json:"dest" yaml:"dest" toml:"dest"`
	Env    bool   `json:"resolveFromEnvironment" yaml:"resolveFromEnvironment" toml:"resolveFromEnvironment"`
	Skip   bool   `json:"skip" yaml:"skip" toml:"skip"`
}

// Plan lists the resolved source and destination of every template in
// evaluation order. Templates without content are marked Skip.
func (e *Evaluator) Plan() []PlanEntry {
	out := make([]PlanEntry, 0, len(e.Templates))
	for _, t := range e.Templates {
		out = append(out, PlanEntry{
			Source: t.SourcePath(),
			Dest:   t.DestPath(),
			Env:    t.ResolveFromEnv,
			Skip:   !t.Loaded(),
		})
	}
	return out
}
