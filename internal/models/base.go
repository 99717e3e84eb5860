package models

import (
	"time"
)

// Base contains common columns for all tables.
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PaymentMethod is how an expense is paid.
type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "efectivo"
	PaymentMethodCard PaymentMethod = "tarjeta"
)
