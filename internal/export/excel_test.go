package export_test

import (
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"matchmaker/internal/export"
	"matchmaker/internal/pkg/match"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("WriteWorkbook", func() {
	var path string

	BeforeEach(func() {
		path = filepath.Join(GinkgoT().TempDir(), "matches.xlsx")
	})

	It("writes one sheet per year with a header and one row per result", func() {
		results := map[int][]match.Result{
			2019: {
				{SectionID: 7, PersonID: 70, Name: "orlov a.", Candidates: "1 71 petrova a."},
			},
			2020: {
				{SectionID: 8, PersonID: 80, Name: "volkov b.", Candidates: "0 81 zaytseva c.\n2 82 sidorova d."},
				{SectionID: 9, PersonID: 81, Name: "zaytseva c.", Candidates: "3 80 volkov b."},
			},
		}

		Expect(export.WriteWorkbook(results, path)).To(Succeed())

		wb, err := excelize.OpenFile(path)
		Expect(err).NotTo(HaveOccurred())
		defer wb.Close()

		Expect(wb.GetSheetList()).To(Equal([]string{"2019", "2020"}))

		Expect(wb.GetCellValue("2019", "A1")).To(Equal("name"))
		Expect(wb.GetCellValue("2019", "B1")).To(Equal("section_id"))
		Expect(wb.GetCellValue("2019", "C1")).To(Equal("person_id"))
		Expect(wb.GetCellValue("2019", "D1")).To(Equal("candidates"))

		Expect(wb.GetCellValue("2019", "A2")).To(Equal("orlov a."))
		Expect(wb.GetCellValue("2019", "B2")).To(Equal("7"))
		Expect(wb.GetCellValue("2019", "C2")).To(Equal("70"))
		Expect(wb.GetCellValue("2019", "D2")).To(Equal("1 71 petrova a."))

		Expect(wb.GetCellValue("2020", "A3")).To(Equal("zaytseva c."))
		Expect(wb.GetCellValue("2020", "D2")).To(Equal("0 81 zaytseva c.\n2 82 sidorova d."))
	})

	It("omits years without results", func() {
		results := map[int][]match.Result{
			2019: {{SectionID: 7, PersonID: 70, Name: "orlov a.", Candidates: "1 71 petrova a."}},
			2020: {},
		}

		Expect(export.WriteWorkbook(results, path)).To(Succeed())

		wb, err := excelize.OpenFile(path)
		Expect(err).NotTo(HaveOccurred())
		defer wb.Close()

		Expect(wb.GetSheetList()).To(Equal([]string{"2019"}))
	})

	It("widens and wraps the candidates column", func() {
		results := map[int][]match.Result{
			2019: {{SectionID: 7, PersonID: 70, Name: "orlov a.", Candidates: "1 71 petrova a."}},
		}

		Expect(export.WriteWorkbook(results, path)).To(Succeed())

		wb, err := excelize.OpenFile(path)
		Expect(err).NotTo(HaveOccurred())
		defer wb.Close()

		width, err := wb.GetColWidth("2019", "D")
		Expect(err).NotTo(HaveOccurred())
		Expect(width).To(BeNumerically("==", 60))

		styleID, err := wb.GetColStyle("2019", "D")
		Expect(err).NotTo(HaveOccurred())
		style, err := wb.GetStyle(styleID)
		Expect(err).NotTo(HaveOccurred())
		Expect(style.Alignment).NotTo(BeNil())
		Expect(style.Alignment.WrapText).To(BeTrue())
	})

	It("refuses to write an empty workbook", func() {
		Expect(export.WriteWorkbook(nil, path)).To(HaveOccurred())
	})
})
