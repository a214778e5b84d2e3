package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/marina-vidal/gimnasio-go-api/internal/models"
)

// ConteoPorSeccion is one grouped row of the activities-by-section query.
type ConteoPorSeccion struct {
	Seccion   string `json:"seccion"`
	Actividad string `json:"actividad"`
	Total     int64  `json:"total"`
}

// ConteoPorGrupo is one grouped row of the activities-by-group query.
type ConteoPorGrupo struct {
	Grupo     string `json:"grupo"`
	Actividad string `json:"actividad"`
	Total     int64  `json:"total"`
}

// EstadisticasRepository runs the windowed aggregation queries behind the
// statistics pages. Groupings with zero matching records simply do not
// appear in the result.
type EstadisticasRepository interface {
	ActividadesPorSeccion(ctx context.Context, desde, hasta time.Time) ([]ConteoPorSeccion, error)
	ActividadesPorGrupo(ctx context.Context, desde, hasta time.Time) ([]ConteoPorGrupo, error)
	MiembrosConActividad(ctx context.Context, desde, hasta time.Time) ([]uint, error)
}

type estadisticasRepository struct {
	db *gorm.DB
}

// NewEstadisticasRepository constructs the aggregation repository.
func NewEstadisticasRepository(db *gorm.DB) EstadisticasRepository {
	return &estadisticasRepository{db: db}
}

func (r *estadisticasRepository) ActividadesPorSeccion(ctx context.Context, desde, hasta time.Time) ([]ConteoPorSeccion, error) {
	var conteos []ConteoPorSeccion
	err := r.db.WithContext(ctx).
		Model(&models.RegistroActividad{}).
		Select("secciones.nombre AS seccion, actividades.nombre AS actividad, COUNT(*) AS total").
		Joins("JOIN miembros ON miembros.id = registro_actividades.miembro_id").
		Joins("JOIN secciones ON secciones.id = miembros.seccion_id").
		Joins("JOIN actividades ON actividades.id = registro_actividades.actividad_id").
		Where("registro_actividades.fecha >= ? AND registro_actividades.fecha <= ?", desde, hasta).
		Group("secciones.nombre, actividades.nombre").
		Order("secciones.nombre, actividades.nombre").
		Scan(&conteos).Error
	if err != nil {
		return nil, err
	}

	return conteos, nil
}

func (r *estadisticasRepository) ActividadesPorGrupo(ctx context.Context, desde, hasta time.Time) ([]ConteoPorGrupo, error) {
	var conteos []ConteoPorGrupo
	err := r.db.WithContext(ctx).
		Model(&models.RegistroActividad{}).
		Select("grupos.nombre AS grupo, actividades.nombre AS actividad, COUNT(*) AS total").
		Joins("JOIN miembros ON miembros.id = registro_actividades.miembro_id").
		Joins("JOIN grupos ON grupos.id = miembros.grupo_id").
		Joins("JOIN actividades ON actividades.id = registro_actividades.actividad_id").
		Where("registro_actividades.fecha >= ? AND registro_actividades.fecha <= ?", desde, hasta).
		Group("grupos.nombre, actividades.nombre").
		Order("grupos.nombre, actividades.nombre").
		Scan(&conteos).Error
	if err != nil {
		return nil, err
	}

	return conteos, nil
}

// MiembrosConActividad returns the distinct ids of members with at least
// one log record in the window. The members-without-activity page is the
// set difference between all members and this list.
func (r *estadisticasRepository) MiembrosConActividad(ctx context.Context, desde, hasta time.Time) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.RegistroActividad{}).
		Distinct("miembro_id").
		Where("fecha >= ? AND fecha <= ?", desde, hasta).
		Pluck("miembro_id", &ids).Error
	if err != nil {
		return nil, err
	}

	return ids, nil
}
