package declarations

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"matchmaker/internal/models"
	"matchmaker/internal/pkg/match"
)

// Store retrieves declaration sections and per-section asset totals from
// the declarations schema. All methods are read-only.
type Store struct {
	DB *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db}
}

// Side selects whose asset line items a totals query aggregates.
type Side int

const (
	// Own selects the declarant's items (relative_id IS NULL).
	Own Side = iota
	// Spouse selects items declared on behalf of a spouse. Items of any
	// other relative are never aggregated, they are not evidence of the
	// declarant's own household.
	Spouse
)

func (s Side) filter() string {
	if s == Spouse {
		return fmt.Sprintf("relative_id = %d", models.RelativeSpouse)
	}
	return "relative_id IS NULL"
}

type sectionRow struct {
	SectionID   uint
	PersonID    *uint
	Gender      *int
	IncomeYear  *int
	FamilyName  *string
	Name        *string
	Patronymic  *string
	OriginalFio string
}

const sectionsQuery = `
	SELECT
		ds.id AS section_id,
		ds.original_fio,
		ds.person_id,
		dp.gender,
		dd.income_year,
		dp.family_name,
		dp.name,
		dp.patronymic
	FROM declarations_section AS ds
	LEFT JOIN declarations_person AS dp ON ds.person_id = dp.id
	LEFT JOIN declarations_document AS dd ON ds.document_id = dd.id`

// Sections returns every declaration section joined with its person and
// document, ready for record building. Pass year 0 for all years.
func (s *Store) Sections(ctx context.Context, year int) ([]match.SectionRow, error) {
	query := sectionsQuery
	args := []interface{}{}
	if year != 0 {
		query += " WHERE dd.income_year = ?"
		args = append(args, year)
	}

	var rows []sectionRow
	if err := s.DB.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load sections: %w", err)
	}

	sections := make([]match.SectionRow, 0, len(rows))
	for _, row := range rows {
		sections = append(sections, match.SectionRow{
			SectionID:   row.SectionID,
			PersonID:    derefUint(row.PersonID),
			Gender:      match.Gender(derefInt(row.Gender)),
			IncomeYear:  derefInt(row.IncomeYear),
			FamilyName:  derefString(row.FamilyName),
			GivenName:   derefString(row.Name),
			Patronymic:  derefString(row.Patronymic),
			OriginalFio: row.OriginalFio,
		})
	}
	return sections, nil
}

// Totals aggregates one side's asset line items per section: vehicle
// count, real-estate area sum and count, income sum. Sections without any
// items of an asset type simply have no contribution from it.
func (s *Store) Totals(ctx context.Context, side Side, year int) (map[uint]match.Totals, error) {
	totals := make(map[uint]match.Totals)
	db := s.DB.WithContext(ctx)

	yearFilter := ""
	args := []interface{}{}
	if year != 0 {
		yearFilter = ` AND section_id IN (
			SELECT ds.id FROM declarations_section AS ds
			JOIN declarations_document AS dd ON ds.document_id = dd.id
			WHERE dd.income_year = ?)`
		args = append(args, year)
	}

	var vehicles []struct {
		SectionID  uint
		VehicleNum int
	}
	vehicleQuery := fmt.Sprintf(`
		SELECT section_id, COUNT(section_id) AS vehicle_num
		FROM declarations_vehicle
		WHERE %s%s
		GROUP BY section_id`, side.filter(), yearFilter)
	if err := db.Raw(vehicleQuery, args...).Scan(&vehicles).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate vehicles: %w", err)
	}
	for _, v := range vehicles {
		t := totals[v.SectionID]
		t.VehicleCount = v.VehicleNum
		totals[v.SectionID] = t
	}

	var realestates []struct {
		SectionID     uint
		Realestate    float64
		RealestateNum int
	}
	realestateQuery := fmt.Sprintf(`
		SELECT section_id, SUM(square) AS realestate, COUNT(section_id) AS realestate_num
		FROM declarations_realestate
		WHERE %s%s
		GROUP BY section_id`, side.filter(), yearFilter)
	if err := db.Raw(realestateQuery, args...).Scan(&realestates).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate realestate: %w", err)
	}
	for _, r := range realestates {
		t := totals[r.SectionID]
		t.RealestateArea = r.Realestate
		t.RealestateCount = r.RealestateNum
		totals[r.SectionID] = t
	}

	var incomes []struct {
		SectionID uint
		Income    float64
	}
	incomeQuery := fmt.Sprintf(`
		SELECT section_id, SUM(size) AS income
		FROM declarations_income
		WHERE %s%s
		GROUP BY section_id`, side.filter(), yearFilter)
	if err := db.Raw(incomeQuery, args...).Scan(&incomes).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate income: %w", err)
	}
	for _, in := range incomes {
		t := totals[in.SectionID]
		t.Income = in.Income
		totals[in.SectionID] = t
	}

	return totals, nil
}

// Years returns the distinct reporting years present in the store.
func (s *Store) Years(ctx context.Context) ([]int, error) {
	var years []int
	err := s.DB.WithContext(ctx).
		Raw(`SELECT DISTINCT income_year FROM declarations_document
			WHERE income_year IS NOT NULL ORDER BY income_year`).
		Scan(&years).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load years: %w", err)
	}
	return years, nil
}

// Records loads sections and both totals sides and builds the matching
// records. Pass year 0 for all years.
func (s *Store) Records(ctx context.Context, year int) ([]*match.Record, error) {
	sections, err := s.Sections(ctx, year)
	if err != nil {
		return nil, err
	}

	own, err := s.Totals(ctx, Own, year)
	if err != nil {
		return nil, err
	}

	spouse, err := s.Totals(ctx, Spouse, year)
	if err != nil {
		return nil, err
	}

	return match.BuildRecords(sections, own, spouse), nil
}

func derefUint(v *uint) uint {
	if v == nil {
		return 0
	}
	return *v
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
