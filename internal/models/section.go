package models

// Section is one person's disclosure within one document. The person link
// is nullable: free-text-only sections keep their identity in OriginalFio.
type Section struct {
	ID          uint `gorm:"primaryKey"`
	DocumentID  uint
	PersonID    *uint
	OriginalFio string
}

func (Section) TableName() string {
	return "declarations_section"
}

// Person is the linked declarant. Gender is 0 when unknown.
type Person struct {
	ID         uint `gorm:"primaryKey"`
	FamilyName string
	Name       string
	Patronymic string
	Gender     int
}

func (Person) TableName() string {
	return "declarations_person"
}

// Document groups sections filed together for one reporting year.
type Document struct {
	ID         uint `gorm:"primaryKey"`
	IncomeYear int
}

func (Document) TableName() string {
	return "declarations_document"
}
