package dto

import (
	"fmt"
	"time"

	"github.com/marina-vidal/gimnasio-go-api/internal/models"
)

// FechaLayout is the wire format for dates, inclusive range bounds included.
const FechaLayout = "2006-01-02"

// CrearRegistroRequest captures the schedule-activity form. The recording
// monitor comes from the session, not the payload.
type CrearRegistroRequest struct {
	Fecha         string `json:"fecha" validate:"required,datetime=2006-01-02"`
	MiembroID     uint   `json:"miembro_id" validate:"required,gte=1"`
	ActividadID   uint   `json:"actividad_id" validate:"required,gte=1"`
	TurnoID       uint   `json:"turno_id" validate:"required,gte=1"`
	Observaciones string `json:"observaciones" validate:"omitempty,max=4000"`
}

// RegistroResponse serializes one attendance event with the display names
// of every referenced row.
type RegistroResponse struct {
	ID            uint   `json:"id"`
	Fecha         string `json:"fecha"`
	NIP           uint   `json:"nip"`
	Miembro       string `json:"miembro"`
	Actividad     string `json:"actividad"`
	Turno         string `json:"turno"`
	Monitor       string `json:"monitor"`
	Observaciones string `json:"observaciones"`
}

// RegistroListResponse wraps a windowed listing of attendance events.
type RegistroListResponse struct {
	Items []RegistroResponse `json:"items"`
	Total int                `json:"total"`
	Desde string             `json:"desde"`
	Hasta string             `json:"hasta"`
}

// NewRegistroResponse converts a log record into its DTO.
func NewRegistroResponse(registro models.RegistroActividad) RegistroResponse {
	return RegistroResponse{
		ID:            registro.ID,
		Fecha:         time.Time(registro.Fecha).Format(FechaLayout),
		NIP:           registro.Miembro.NIP,
		Miembro:       fmt.Sprintf("%s %s", registro.Miembro.Nombre, registro.Miembro.Apellidos),
		Actividad:     registro.Actividad.Nombre,
		Turno:         registro.Turno.Nombre,
		Monitor:       fmt.Sprintf("%s %s", registro.Monitor.Nombre, registro.Monitor.Apellidos),
		Observaciones: registro.Observaciones,
	}
}
