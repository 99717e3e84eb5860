package models

// AuditLog is one successful write made through the API. RequestID ties the
// entry to the access log line of the same request.
type AuditLog struct {
	Base
	Action       string `gorm:"column:accion;not null" json:"accion"`
	ResourceType string `gorm:"column:recurso;not null;index" json:"recurso"`
	ResourceID   uint   `gorm:"column:recurso_id" json:"recurso_id"`
	RequestID    string `gorm:"column:request_id;index" json:"request_id"`
	IPAddress    string `gorm:"column:ip" json:"ip"`
	Changes      string `gorm:"column:cambios" json:"cambios,omitempty"`
}

// TableName overrides the default table name.
func (AuditLog) TableName() string { return "auditoria" }
