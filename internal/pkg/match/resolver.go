package match

import (
	"fmt"
	"strings"
)

// Result is one resolver emission: a declarant whose combined assets
// coincide with at least one other declarant's, with the candidates
// rendered one per line as "<pool_index> <person_id> <name>".
type Result struct {
	SectionID  uint
	PersonID   uint
	Name       string
	Candidates string
}

// Resolve runs one greedy sweep over a single year's records.
//
// Each record is visited exactly once in pool order. A non-empty candidate
// set is emitted as-is; when it holds exactly one record, that record is
// consumed from the pool so the pair is not reported a second time from
// the other side. Ambiguous sets consume nothing: the right pairing cannot
// be picked here and every later visit should still see the whole group.
// The sweep is order-dependent on purpose, it is a heuristic, not a stable
// matching.
func Resolve(records []*Record) []Result {
	pool := NewPool(records)

	var results []Result
	for i := 0; i < pool.Len(); i++ {
		if !pool.Live(i) {
			continue
		}

		candidates := pool.Candidates(i)
		if len(candidates) == 0 {
			continue
		}

		r := pool.Record(i)
		results = append(results, Result{
			SectionID:  r.SectionID,
			PersonID:   r.PersonID,
			Name:       r.Name,
			Candidates: renderCandidates(pool, candidates),
		})

		if len(candidates) == 1 {
			pool.Remove(candidates[0])
		}
	}

	return results
}

func renderCandidates(pool *Pool, candidates []int) string {
	lines := make([]string, 0, len(candidates))
	for _, i := range candidates {
		c := pool.Record(i)
		lines = append(lines, fmt.Sprintf("%d %d %s", i, c.PersonID, c.Name))
	}
	return strings.Join(lines, "\n")
}
