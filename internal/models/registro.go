package models

import (
	"time"

	"gorm.io/datatypes"
)

// RegistroActividad is one attendance event: a member did an activity on a
// date, in a shift, recorded by a monitor. Immutable once created; the same
// member may be logged more than once for the same activity, date and shift.
//
// Foreign keys are deliberately unguarded on deletion of the referenced
// rows: deleting a member leaves its log records orphaned. That matches the
// stored data produced by the legacy system; see DESIGN.md for the policy.
type RegistroActividad struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Fecha         datatypes.Date `gorm:"index;not null" json:"fecha"`
	MiembroID     uint           `gorm:"not null" json:"miembro_id"`
	ActividadID   uint           `gorm:"not null" json:"actividad_id"`
	TurnoID       uint           `gorm:"not null" json:"turno_id"`
	MonitorID     uint           `gorm:"not null" json:"monitor_id"`
	Observaciones string         `gorm:"size:4000" json:"observaciones"`
	Miembro       Miembro        `gorm:"foreignKey:MiembroID" json:"miembro"`
	Actividad     Actividad      `gorm:"foreignKey:ActividadID" json:"actividad"`
	Turno         Turno          `gorm:"foreignKey:TurnoID" json:"turno"`
	Monitor       Monitor        `gorm:"foreignKey:MonitorID" json:"monitor"`
	CreatedAt     time.Time      `json:"created_at"`
}

// TableName keeps the legacy table name used by the hosted schema.
func (RegistroActividad) TableName() string { return "registro_actividades" }
