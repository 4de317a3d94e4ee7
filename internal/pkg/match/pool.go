package match

import "sort"

// Pool is one year's working set: records in a fixed visiting order plus a
// removed flag per slot. Removal flips the flag and never moves a record,
// so slot indexes stay stable for the whole sweep.
type Pool struct {
	records []*Record
	removed []bool
}

// NewPool sorts the records into visiting order and wraps them. Known
// genders come before unknown, men before women, ties break by section id
// so repeated runs visit identically. This order decides which side of an
// ambiguous group claims the pool first and must stay fixed.
func NewPool(records []*Record) *Pool {
	sorted := make([]*Record, len(records))
	copy(sorted, records)

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Gender != sorted[j].Gender {
			return sorted[i].Gender.rank() > sorted[j].Gender.rank()
		}
		return sorted[i].SectionID < sorted[j].SectionID
	})

	return &Pool{
		records: sorted,
		removed: make([]bool, len(sorted)),
	}
}

func (p *Pool) Len() int {
	return len(p.records)
}

func (p *Pool) Record(i int) *Record {
	return p.records[i]
}

// Live reports whether slot i has not been consumed by an earlier match.
func (p *Pool) Live(i int) bool {
	return !p.removed[i]
}

func (p *Pool) Remove(i int) {
	p.removed[i] = true
}
