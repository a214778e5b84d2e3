package dto

import "github.com/marina-vidal/gimnasio-go-api/internal/models"

// ReferenciaResponse serializes a reference row (section, group or shift).
type ReferenciaResponse struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
}

// ActividadResponse serializes an activity catalogue entry.
type ActividadResponse struct {
	ID          uint   `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// CrearActividadRequest captures the configuration form for a new activity.
type CrearActividadRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=2"`
	Descripcion string `json:"descripcion" validate:"omitempty,max=2000"`
}

// NewSeccionResponse converts a section model into a DTO.
func NewSeccionResponse(seccion models.Seccion) ReferenciaResponse {
	return ReferenciaResponse{ID: seccion.ID, Nombre: seccion.Nombre}
}

// NewGrupoResponse converts a group model into a DTO.
func NewGrupoResponse(grupo models.Grupo) ReferenciaResponse {
	return ReferenciaResponse{ID: grupo.ID, Nombre: grupo.Nombre}
}

// NewTurnoResponse converts a shift model into a DTO.
func NewTurnoResponse(turno models.Turno) ReferenciaResponse {
	return ReferenciaResponse{ID: turno.ID, Nombre: turno.Nombre}
}

// NewActividadResponse converts an activity model into a DTO.
func NewActividadResponse(actividad models.Actividad) ActividadResponse {
	return ActividadResponse{
		ID:          actividad.ID,
		Nombre:      actividad.Nombre,
		Descripcion: actividad.Descripcion,
	}
}
