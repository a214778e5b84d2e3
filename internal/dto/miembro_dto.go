package dto

import "github.com/marina-vidal/gimnasio-go-api/internal/models"

// MiembroListRequest defines the server-side filters for member listings.
type MiembroListRequest struct {
	SeccionID *uint
	GrupoID   *uint
	Buscar    string
}

// MiembroResponse serializes a member with its section and group embedded.
type MiembroResponse struct {
	ID        uint               `json:"id"`
	NIP       uint               `json:"nip"`
	Nombre    string             `json:"nombre"`
	Apellidos string             `json:"apellidos"`
	Seccion   ReferenciaResponse `json:"seccion"`
	Grupo     ReferenciaResponse `json:"grupo"`
}

// MiembroListResponse wraps a member listing.
type MiembroListResponse struct {
	Items []MiembroResponse `json:"items"`
	Total int               `json:"total"`
}

// CrearMiembroRequest captures the add-member form.
type CrearMiembroRequest struct {
	NIP       uint   `json:"nip" validate:"required,gte=1"`
	Nombre    string `json:"nombre" validate:"required,min=1"`
	Apellidos string `json:"apellidos" validate:"required,min=1"`
	SeccionID uint   `json:"seccion_id" validate:"required,gte=1"`
	GrupoID   uint   `json:"grupo_id" validate:"required,gte=1"`
}

// ActualizarMiembroRequest captures partial updates from the edit form.
type ActualizarMiembroRequest struct {
	NIP       *uint   `json:"nip" validate:"omitempty,gte=1"`
	Nombre    *string `json:"nombre" validate:"omitempty,min=1"`
	Apellidos *string `json:"apellidos" validate:"omitempty,min=1"`
	SeccionID *uint   `json:"seccion_id" validate:"omitempty,gte=1"`
	GrupoID   *uint   `json:"grupo_id" validate:"omitempty,gte=1"`
}

// NewMiembroResponse converts a member model into its DTO.
func NewMiembroResponse(miembro models.Miembro) MiembroResponse {
	return MiembroResponse{
		ID:        miembro.ID,
		NIP:       miembro.NIP,
		Nombre:    miembro.Nombre,
		Apellidos: miembro.Apellidos,
		Seccion:   NewSeccionResponse(miembro.Seccion),
		Grupo:     NewGrupoResponse(miembro.Grupo),
	}
}
