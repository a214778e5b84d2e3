package models

import "time"

// Actividad is a catalogue entry for an activity type. Append-only: the
// management UI creates activities but never edits or removes them.
type Actividad struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Nombre      string    `gorm:"size:160;not null" json:"nombre"`
	Descripcion string    `gorm:"size:2000" json:"descripcion"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName keeps the legacy table name used by the hosted schema.
func (Actividad) TableName() string { return "actividades" }
