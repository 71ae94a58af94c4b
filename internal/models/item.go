package models

type Item struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"index;not null"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	VatExcluded bool    `json:"vat_excluded" gorm:"default:false"`
	IsDeleted   bool    `json:"is_deleted" gorm:"default:false"`
}

// VatExcludedMarker is the free-text tag in order notes that flags an item as
// VAT-excluded when it is created during ingestion.
const VatExcludedMarker = "부가세별도"

func DeletedItem() *Item {
	return &Item{ID: 0, Name: "삭제됨"}
}
