package match

// Monetary and area totals come from two independently filed declarations
// of the same household, so each is compared under an ordered list of
// tolerance forms joined by OR. The list stays explicit: the emitted
// semantics are "equal under at least one form", not a distance score.
var incomeTolerances = []func(a, b *Record) bool{
	func(a, b *Record) bool { return a.Combined.Income == b.Combined.Income },
	func(a, b *Record) bool { return a.IncomeRounded == b.IncomeRounded },
	func(a, b *Record) bool { return a.IncomeBucketed == b.IncomeBucketed },
}

var realestateTolerances = []func(a, b *Record) bool{
	func(a, b *Record) bool { return a.Combined.RealestateArea == b.Combined.RealestateArea },
	func(a, b *Record) bool { return a.RealestateRounded == b.RealestateRounded },
	func(a, b *Record) bool { return a.RealestateBucketed == b.RealestateBucketed },
}

func equalUnderAny(a, b *Record, tolerances []func(a, b *Record) bool) bool {
	for _, equal := range tolerances {
		if equal(a, b) {
			return true
		}
	}
	return false
}

// Candidates returns the slots of live records that plausibly describe the
// same household as the record in slot focal. Read-only against the pool.
func (p *Pool) Candidates(focal int) []int {
	r := p.records[focal]

	var candidates []int
	for i, c := range p.records {
		if i == focal || p.removed[i] {
			continue
		}
		if isCandidate(r, c) {
			candidates = append(candidates, i)
		}
	}
	return candidates
}

// isCandidate applies the full filter chain. Counts are small integers with
// no reporting noise and must match exactly; income and area go through
// the tolerance lists.
func isCandidate(r, c *Record) bool {
	if r.Gender.Known() && c.Gender == r.Gender {
		return false
	}
	if c.Name == r.Name {
		return false
	}
	if c.Combined.RealestateCount != r.Combined.RealestateCount {
		return false
	}
	if c.Combined.VehicleCount != r.Combined.VehicleCount {
		return false
	}
	if !equalUnderAny(r, c, incomeTolerances) {
		return false
	}
	return equalUnderAny(r, c, realestateTolerances)
}
