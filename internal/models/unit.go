package models

type Unit struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"index;not null"`
	Description string `json:"description" gorm:"default:''"`
	IsDeleted   bool   `json:"is_deleted" gorm:"default:false"`
}

// DefaultUnitName is used when a spreadsheet row leaves the unit cell blank.
const DefaultUnitName = "개"

func DeletedUnit() *Unit {
	return &Unit{ID: 0, Name: "삭제됨"}
}
