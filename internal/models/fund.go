package models

import "time"

// FundType is the kind of income record.
type FundType string

const (
	FundTypeSalary FundType = "sueldo"
	FundTypeExtra  FundType = "ingreso_extra"
)

// Fund is a received or expected income entry.
type Fund struct {
	Base
	Amount       int64     `gorm:"column:monto;not null" json:"monto"`
	MonthCovered time.Time `gorm:"column:mes_que_cubre;not null;index" json:"mes_que_cubre"`
	PaymentDate  time.Time `gorm:"column:fecha_pago;not null" json:"fecha_pago"`
	Type         FundType  `gorm:"column:tipo;not null;index" json:"tipo"`
	Description  string    `gorm:"column:descripcion" json:"descripcion"`
}

// TableName overrides the default table name.
func (Fund) TableName() string { return "fondos" }
