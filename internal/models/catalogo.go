package models

// Seccion is one of the two static categorisation axes for members.
type Seccion struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Nombre string `gorm:"size:120;not null" json:"nombre"`
}

// TableName keeps the legacy table name used by the hosted schema.
func (Seccion) TableName() string { return "secciones" }

// Grupo is the second categorisation axis, independent of Seccion.
type Grupo struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Nombre string `gorm:"size:120;not null" json:"nombre"`
}

// TableName keeps the legacy table name used by the hosted schema.
func (Grupo) TableName() string { return "grupos" }

// Turno is a named time slot under which attendance is recorded.
type Turno struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Nombre string `gorm:"size:120;not null" json:"nombre"`
}

// TableName keeps the legacy table name used by the hosted schema.
func (Turno) TableName() string { return "turnos" }
