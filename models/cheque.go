package models

import "github.com/shopspring/decimal"

// Cheque statuses. Caller-supplied at creation; never transitioned by the server.
const (
	StatusPast      = "past"
	StatusToday     = "today"
	StatusUpcoming  = "upcoming"
	StatusCancelled = "cancelled"
)

// Cheque represents a tracked bank cheque. Dates are stored as ISO
// YYYY-MM-DD strings so lexicographic comparison matches chronological order.
type Cheque struct {
	ChequeID     uint            `gorm:"primaryKey" json:"chequeId"`
	UserID       string          `gorm:"size:255;not null" json:"userId"`
	ChequeNumber int             `gorm:"not null" json:"chequeNumber"`
	ToPayee      string          `gorm:"size:255;not null" json:"toPayee"`
	IssuedDate   string          `gorm:"size:10;not null" json:"issuedDate"`
	DueDate      string          `gorm:"size:10;not null" json:"dueDate"`
	Amount       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Status       string          `gorm:"size:20;not null" json:"status"`
}
