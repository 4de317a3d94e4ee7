package match

import "strings"

// SectionRow is one declaration section as retrieved from the store,
// before any asset totals are attached.
type SectionRow struct {
	SectionID   uint
	PersonID    uint // 0 when no person is linked
	Gender      Gender
	IncomeYear  int
	FamilyName  string
	GivenName   string
	Patronymic  string
	OriginalFio string
}

// BuildRecords merges section rows with the pre-aggregated own and spouse
// asset totals into matching records. Totals maps are keyed by section id;
// a missing entry means no line items of that side, which counts as zero.
//
// Sections whose combined income and combined real-estate area are both
// zero carry no signal to match on and are dropped here.
func BuildRecords(sections []SectionRow, own, spouse map[uint]Totals) []*Record {
	records := make([]*Record, 0, len(sections))

	for _, s := range sections {
		o := own[s.SectionID]
		combined := o.Add(spouse[s.SectionID])

		if combined.Income == 0 && combined.RealestateArea == 0 {
			continue
		}

		r := &Record{
			SectionID:  s.SectionID,
			PersonID:   s.PersonID,
			Gender:     s.Gender,
			Name:       displayName(s),
			IncomeYear: s.IncomeYear,
			Own:        o,
			Combined:   combined,
		}
		r.normalize()
		records = append(records, r)
	}

	return records
}

// SplitByYear partitions records into per-year groups. Matching never
// crosses reporting years.
func SplitByYear(records []*Record) map[int][]*Record {
	byYear := make(map[int][]*Record)
	for _, r := range records {
		byYear[r.IncomeYear] = append(byYear[r.IncomeYear], r)
	}
	return byYear
}

// displayName builds the lowercased "family i.p." form for linked persons
// and falls back to the raw free-text name otherwise.
func displayName(s SectionRow) string {
	if s.PersonID == 0 {
		return strings.ToLower(s.OriginalFio)
	}

	name := s.FamilyName + " " + initial(s.GivenName)
	if s.Patronymic != "" {
		name += initial(s.Patronymic)
	}
	return strings.ToLower(name)
}

func initial(name string) string {
	runes := []rune(name)
	if len(runes) == 0 {
		return ""
	}
	return string(runes[0]) + "."
}
