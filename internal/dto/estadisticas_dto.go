package dto

import (
	"time"

	"github.com/marina-vidal/gimnasio-go-api/internal/models"
	"github.com/marina-vidal/gimnasio-go-api/internal/repository"
)

// ConteoResponse is one bar of a grouped chart: a category (section or
// group), an activity name and the count labelled "total".
type ConteoResponse struct {
	Categoria string `json:"categoria"`
	Actividad string `json:"actividad"`
	Total     int64  `json:"total"`
}

// EstadisticaResponse wraps a grouped aggregation over a date window.
type EstadisticaResponse struct {
	Items    []ConteoResponse `json:"items"`
	Desde    string           `json:"desde"`
	Hasta    string           `json:"hasta"`
	CacheHit bool             `json:"cache_hit"`
}

// MiembroSinActividadResponse is one row of the inactive-members listing.
type MiembroSinActividadResponse struct {
	ID        uint   `json:"id"`
	NIP       uint   `json:"nip"`
	Nombre    string `json:"nombre"`
	Apellidos string `json:"apellidos"`
	Seccion   string `json:"seccion"`
	Grupo     string `json:"grupo"`
}

// MiembrosSinActividadResponse wraps the inactive-members listing.
type MiembrosSinActividadResponse struct {
	Items    []MiembroSinActividadResponse `json:"items"`
	Total    int                           `json:"total"`
	Desde    string                        `json:"desde"`
	Hasta    string                        `json:"hasta"`
	CacheHit bool                          `json:"cache_hit"`
}

// DashboardResponse is the landing-page payload: recent activity plus the
// default-window aggregations.
type DashboardResponse struct {
	Recientes     []RegistroResponse            `json:"recientes"`
	SinActividad  []MiembroSinActividadResponse `json:"sin_actividad"`
	PorSeccion    []ConteoResponse              `json:"por_seccion"`
	PorGrupo      []ConteoResponse              `json:"por_grupo"`
	DesdeReciente string                        `json:"desde_reciente"`
	DesdeInactivo string                        `json:"desde_inactivo"`
	Hasta         string                        `json:"hasta"`
	GeneratedAt   time.Time                     `json:"generated_at"`
}

// NewConteoPorSeccionResponse converts a grouped section row into a DTO.
func NewConteoPorSeccionResponse(conteo repository.ConteoPorSeccion) ConteoResponse {
	return ConteoResponse{Categoria: conteo.Seccion, Actividad: conteo.Actividad, Total: conteo.Total}
}

// NewConteoPorGrupoResponse converts a grouped group row into a DTO.
func NewConteoPorGrupoResponse(conteo repository.ConteoPorGrupo) ConteoResponse {
	return ConteoResponse{Categoria: conteo.Grupo, Actividad: conteo.Actividad, Total: conteo.Total}
}

// NewMiembroSinActividadResponse converts a member into an inactive row.
func NewMiembroSinActividadResponse(miembro models.Miembro) MiembroSinActividadResponse {
	return MiembroSinActividadResponse{
		ID:        miembro.ID,
		NIP:       miembro.NIP,
		Nombre:    miembro.Nombre,
		Apellidos: miembro.Apellidos,
		Seccion:   miembro.Seccion.Nombre,
		Grupo:     miembro.Grupo.Nombre,
	}
}
