package models

// Asset line items are keyed by section and by relative. RelativeID is nil
// for the declarant's own items and RelativeSpouse for items declared on
// behalf of a spouse; other relative codes exist but never enter matching.

// RelativeSpouse is the relation code for a declared spouse.
const RelativeSpouse = 2

type Vehicle struct {
	ID         uint `gorm:"primaryKey"`
	SectionID  uint
	RelativeID *int
	Name       string
}

func (Vehicle) TableName() string {
	return "declarations_vehicle"
}

type Realestate struct {
	ID         uint `gorm:"primaryKey"`
	SectionID  uint
	RelativeID *int
	Square     float64
}

func (Realestate) TableName() string {
	return "declarations_realestate"
}

type Income struct {
	ID         uint `gorm:"primaryKey"`
	SectionID  uint
	RelativeID *int
	Size       float64
}

func (Income) TableName() string {
	return "declarations_income"
}
