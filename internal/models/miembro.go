package models

import "time"

// Miembro is a gym member. Section and group are preloaded on reads so
// listings can show names instead of foreign keys.
type Miembro struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	NIP       uint      `gorm:"column:nip;uniqueIndex;not null" json:"nip"`
	Nombre    string    `gorm:"size:120;not null" json:"nombre"`
	Apellidos string    `gorm:"size:160;not null" json:"apellidos"`
	SeccionID uint      `gorm:"not null" json:"seccion_id"`
	GrupoID   uint      `gorm:"not null" json:"grupo_id"`
	Seccion   Seccion   `gorm:"foreignKey:SeccionID" json:"seccion"`
	Grupo     Grupo     `gorm:"foreignKey:GrupoID" json:"grupo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the legacy table name used by the hosted schema.
func (Miembro) TableName() string { return "miembros" }
