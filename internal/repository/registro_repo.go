package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/marina-vidal/gimnasio-go-api/internal/models"
)

// RegistroRepository persists attendance events. Records are immutable once
// written: there is no update or delete path in the current scope.
type RegistroRepository interface {
	Create(ctx context.Context, registro *models.RegistroActividad) error
	GetByID(ctx context.Context, id uint) (models.RegistroActividad, error)
	ListByRango(ctx context.Context, desde, hasta time.Time) ([]models.RegistroActividad, error)
}

type registroRepository struct {
	db *gorm.DB
}

// NewRegistroRepository constructs the attendance log repository.
func NewRegistroRepository(db *gorm.DB) RegistroRepository {
	return &registroRepository{db: db}
}

func (r *registroRepository) Create(ctx context.Context, registro *models.RegistroActividad) error {
	return r.db.WithContext(ctx).Create(registro).Error
}

func (r *registroRepository) GetByID(ctx context.Context, id uint) (models.RegistroActividad, error) {
	var registro models.RegistroActividad
	err := r.db.WithContext(ctx).
		Preload("Miembro").
		Preload("Miembro.Seccion").
		Preload("Miembro.Grupo").
		Preload("Actividad").
		Preload("Turno").
		Preload("Monitor").
		First(&registro, id).Error
	if err != nil {
		return models.RegistroActividad{}, err
	}

	return registro, nil
}

// ListByRango returns all records whose fecha falls inside the inclusive
// [desde, hasta] window, with every association needed for display.
func (r *registroRepository) ListByRango(ctx context.Context, desde, hasta time.Time) ([]models.RegistroActividad, error) {
	var registros []models.RegistroActividad
	err := r.db.WithContext(ctx).
		Preload("Miembro").
		Preload("Miembro.Seccion").
		Preload("Miembro.Grupo").
		Preload("Actividad").
		Preload("Turno").
		Preload("Monitor").
		Where("fecha >= ? AND fecha <= ?", desde, hasta).
		Order("fecha, id").
		Find(&registros).Error
	if err != nil {
		return nil, err
	}

	return registros, nil
}
