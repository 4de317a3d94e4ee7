package match

// Gender uses the source numeric codes; zero means the person record is
// missing or carries no gender.
type Gender int

const (
	GenderUnknown Gender = 0
	GenderMale    Gender = 1
	GenderFemale  Gender = 2
)

// Known reports whether the gender filter applies for this value.
func (g Gender) Known() bool {
	return g != GenderUnknown
}

// rank orders pool visits: known genders before unknown, men before women.
func (g Gender) rank() int {
	switch g {
	case GenderMale:
		return 2
	case GenderFemale:
		return 1
	default:
		return 0
	}
}

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "male"
	case GenderFemale:
		return "female"
	default:
		return "unknown"
	}
}

// Totals are the per-section aggregates of one side (own or combined).
type Totals struct {
	VehicleCount    int
	RealestateCount int
	RealestateArea  float64
	Income          float64
}

// Add returns t with the other side's contribution added in.
func (t Totals) Add(o Totals) Totals {
	return Totals{
		VehicleCount:    t.VehicleCount + o.VehicleCount,
		RealestateCount: t.RealestateCount + o.RealestateCount,
		RealestateArea:  t.RealestateArea + o.RealestateArea,
		Income:          t.Income + o.Income,
	}
}

// Record is one declaration section prepared for matching: own and combined
// asset totals plus the tolerance forms derived from the combined side.
// Tolerance fields are filled once by normalize and read-only afterwards.
type Record struct {
	SectionID  uint
	PersonID   uint // 0 when only a free-text name exists
	Gender     Gender
	Name       string
	IncomeYear int

	Own      Totals
	Combined Totals

	IncomeRounded      float64
	IncomeBucketed     float64
	RealestateRounded  float64
	RealestateBucketed float64
}

func (r *Record) normalize() {
	r.IncomeRounded = Round(r.Combined.Income)
	r.IncomeBucketed = Bucket(r.Combined.Income)
	r.RealestateRounded = Round(r.Combined.RealestateArea)
	r.RealestateBucketed = Bucket(r.Combined.RealestateArea)
}
