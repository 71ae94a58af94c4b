package models

// Supplier is a purchase source referenced by orders. Name uniqueness among
// non-deleted rows is enforced in the service layer, not by a DB constraint,
// so a name held only by a deleted supplier can be reused.
type Supplier struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"index;not null"`
	Contact   string `json:"contact"`
	Address   string `json:"address"`
	IsDeleted bool   `json:"is_deleted" gorm:"default:false"`
}

// DeletedSupplier is the placeholder substituted in order responses when the
// referenced supplier row no longer exists. Never persisted.
func DeletedSupplier() *Supplier {
	return &Supplier{ID: 0, Name: "삭제됨"}
}
