package models

type Order struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	Date       string  `json:"date"` // free text, normalized to YYYY-MM-DD on import
	SupplierID uint    `json:"supplier_id"`
	ItemID     uint    `json:"item_id"`
	UnitID     uint    `json:"unit_id"`
	Quantity   float64 `json:"quantity"`
	Price      float64 `json:"price"`
	Total      float64 `json:"total"`

	PaymentSchedule string `json:"payment_schedule"` // 대금지급주기
	PurchaseCycle   string `json:"purchase_cycle"`   // 구입주기
	PaymentMethod   string `json:"payment_method" gorm:"default:'계좌이체'"`

	Client    string `json:"client"`
	Notes     string `json:"notes"`
	IsDeleted bool   `json:"is_deleted" gorm:"default:false"`

	ApprovalStatus  string `json:"approval_status"` // "", "approved" or "rejected"
	ApprovedBy      string `json:"approved_by"`
	ApprovedAt      string `json:"approved_at"`
	RejectionReason string `json:"rejection_reason"`

	Supplier *Supplier `json:"supplier,omitempty"`
	Item     *Item     `json:"item,omitempty"`
	Unit     *Unit     `json:"unit,omitempty"`
}

type ApprovalStatus string

const (
	OrderApproved ApprovalStatus = "approved"
	OrderRejected ApprovalStatus = "rejected"
)

// ApprovedAtLayout is the timestamp format stamped on approve/reject.
const ApprovedAtLayout = "06-01-02 15:04"
