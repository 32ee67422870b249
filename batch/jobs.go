package batch

import (
	"github.com/katalvlaran/lvsearch/loader"
)

// Jobs turns every run of a loaded problem into a job named
// "<problem>/<run label>". A problem without a search section yields none.
func Jobs(p *loader.Problem) []Job[string] {
	if p == nil || p.Search == nil {
		return nil
	}
	jobs := make([]Job[string], 0, len(p.Runs))
	for _, r := range p.Runs {
		name := r.Label
		if p.Name != "" {
			name = p.Name + "/" + r.Label
		}
		jobs = append(jobs, Job[string]{
			Name:      name,
			Problem:   p.Search,
			Heuristic: p.Heuristic,
			Strategy:  r.Strategy,
			Options:   r.Options,
		})
	}

	return jobs
}
