package match_test

import (
	"matchmaker/internal/pkg/match"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("BuildRecords", func() {
	section := func(id uint, personID uint, gender match.Gender, year int) match.SectionRow {
		return match.SectionRow{
			SectionID:  id,
			PersonID:   personID,
			Gender:     gender,
			IncomeYear: year,
			FamilyName: "Иванов",
			GivenName:  "Пётр",
			Patronymic: "Сергеевич",
		}
	}

	It("combines own and spouse totals", func() {
		sections := []match.SectionRow{section(1, 10, match.GenderMale, 2020)}
		own := map[uint]match.Totals{
			1: {VehicleCount: 1, RealestateCount: 1, RealestateArea: 40, Income: 600},
		}
		spouse := map[uint]match.Totals{
			1: {RealestateCount: 1, RealestateArea: 17.5, Income: 400},
		}

		records := match.BuildRecords(sections, own, spouse)
		Expect(records).To(HaveLen(1))

		r := records[0]
		Expect(r.Own.Income).To(Equal(600.0))
		Expect(r.Combined.Income).To(Equal(1000.0))
		Expect(r.Combined.RealestateArea).To(Equal(57.5))
		Expect(r.Combined.RealestateCount).To(Equal(2))
		Expect(r.Combined.VehicleCount).To(Equal(1))
	})

	It("derives tolerance forms from the combined totals", func() {
		sections := []match.SectionRow{section(1, 10, match.GenderMale, 2020)}
		own := map[uint]match.Totals{1: {Income: 1000.4, RealestateArea: 57}}

		records := match.BuildRecords(sections, own, nil)
		Expect(records).To(HaveLen(1))

		r := records[0]
		Expect(r.IncomeRounded).To(Equal(1000.0))
		Expect(r.IncomeBucketed).To(Equal(1000.0))
		Expect(r.RealestateRounded).To(Equal(57.0))
		Expect(r.RealestateBucketed).To(Equal(50.0))
	})

	It("treats missing totals as zero", func() {
		sections := []match.SectionRow{section(1, 10, match.GenderMale, 2020)}
		spouse := map[uint]match.Totals{1: {Income: 500}}

		records := match.BuildRecords(sections, nil, spouse)
		Expect(records).To(HaveLen(1))
		Expect(records[0].Combined.Income).To(Equal(500.0))
		Expect(records[0].Combined.VehicleCount).To(Equal(0))
	})

	It("drops sections without income or real-estate signal", func() {
		sections := []match.SectionRow{
			section(1, 10, match.GenderMale, 2020),
			section(2, 11, match.GenderFemale, 2020),
		}
		// Section 2 owns vehicles but declares no income and no area;
		// counts alone carry nothing to match on.
		own := map[uint]match.Totals{
			1: {Income: 1000},
			2: {VehicleCount: 3},
		}

		records := match.BuildRecords(sections, own, nil)
		Expect(records).To(HaveLen(1))
		Expect(records[0].SectionID).To(Equal(uint(1)))
	})

	Describe("display name", func() {
		It("builds family name plus initials, lowercased", func() {
			sections := []match.SectionRow{section(1, 10, match.GenderMale, 2020)}
			own := map[uint]match.Totals{1: {Income: 1}}

			records := match.BuildRecords(sections, own, nil)
			Expect(records[0].Name).To(Equal("иванов п.с."))
		})

		It("omits the patronymic initial when there is none", func() {
			s := section(1, 10, match.GenderMale, 2020)
			s.Patronymic = ""
			own := map[uint]match.Totals{1: {Income: 1}}

			records := match.BuildRecords([]match.SectionRow{s}, own, nil)
			Expect(records[0].Name).To(Equal("иванов п."))
		})

		It("falls back to the free-text name for unlinked sections", func() {
			s := match.SectionRow{
				SectionID:   1,
				IncomeYear:  2020,
				OriginalFio: "Сидорова Анна Павловна",
			}
			own := map[uint]match.Totals{1: {Income: 1}}

			records := match.BuildRecords([]match.SectionRow{s}, own, nil)
			Expect(records[0].Name).To(Equal("сидорова анна павловна"))
		})
	})
})

var _ = Describe("SplitByYear", func() {
	It("partitions records by reporting year", func() {
		records := []*match.Record{
			{SectionID: 1, IncomeYear: 2019},
			{SectionID: 2, IncomeYear: 2020},
			{SectionID: 3, IncomeYear: 2019},
		}

		byYear := match.SplitByYear(records)
		Expect(byYear).To(HaveLen(2))
		Expect(byYear[2019]).To(HaveLen(2))
		Expect(byYear[2020]).To(HaveLen(1))
	})
})
