package models

// ServiceType is an advisory service category offered by advisors
// (e.g. retirement planning, tax planning).
type ServiceType struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}
