package models

import (
	"time"
)

type Waiter struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:150;not null" json:"name"`
	Phone     string    `gorm:"size:20" json:"phone"`
	Email     string    `gorm:"size:150" json:"email"`
	HireDate  time.Time `gorm:"type:date;not null" json:"hire_date"`
	CreatedAt time.Time `json:"created_at"`
	Orders    []Order   `json:"-"`
}

const (
	TableStatusFree     = "Free"
	TableStatusOccupied = "Occupied"
	TableStatusReserved = "Reserved"
)

type Table struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Number   int     `gorm:"unique;not null" json:"number"`
	Capacity int     `gorm:"not null;check:capacity > 0" json:"capacity"`
	Status   string  `gorm:"size:20;not null" json:"status"`
	Orders   []Order `json:"-"`
}

func ValidTableStatus(s string) bool {
	switch s {
	case TableStatusFree, TableStatusOccupied, TableStatusReserved:
		return true
	}
	return false
}
