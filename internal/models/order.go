package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusOpen   = "Open"
	OrderStatusClosed = "Closed"
)

const (
	LineStatusPending   = "Pending"
	LineStatusPreparing = "Preparing"
	LineStatusServed    = "Served"
	LineStatusCancelled = "Cancelled"
)

type Order struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	TableID   uint            `gorm:"not null;index" json:"table_id"`
	Table     *Table          `gorm:"foreignKey:TableID" json:"table,omitempty"`
	WaiterID  uint            `gorm:"not null" json:"waiter_id"`
	Waiter    *Waiter         `gorm:"foreignKey:WaiterID" json:"waiter,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	ClosedAt  *time.Time      `json:"closed_at,omitempty"`
	Total     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	Status    string          `gorm:"size:30;not null" json:"status"`
	Comments  string          `gorm:"size:500" json:"comments"`
	Lines     []OrderLine     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"lines"`
}

type OrderLine struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"not null;index" json:"order_id"`
	ProductID uint            `gorm:"not null" json:"product_id"`
	Product   *MenuItem       `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int             `gorm:"not null;check:quantity > 0" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	Status    string          `gorm:"size:30;not null" json:"status"`
}

func ValidOrderStatus(s string) bool {
	return s == OrderStatusOpen || s == OrderStatusClosed
}

func ValidLineStatus(s string) bool {
	switch s {
	case LineStatusPending, LineStatusPreparing, LineStatusServed, LineStatusCancelled:
		return true
	}
	return false
}
