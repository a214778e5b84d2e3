package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/marina-vidal/gimnasio-go-api/internal/models"
)

// ActividadRepository manages the activity catalogue. Append-only: there is
// no update or delete path in the current scope.
type ActividadRepository interface {
	List(ctx context.Context) ([]models.Actividad, error)
	Create(ctx context.Context, actividad *models.Actividad) error
	Exists(ctx context.Context, id uint) (bool, error)
}

type actividadRepository struct {
	db *gorm.DB
}

// NewActividadRepository constructs the activity catalogue repository.
func NewActividadRepository(db *gorm.DB) ActividadRepository {
	return &actividadRepository{db: db}
}

func (r *actividadRepository) List(ctx context.Context) ([]models.Actividad, error) {
	var actividades []models.Actividad
	err := r.db.WithContext(ctx).Order("id").Find(&actividades).Error
	return actividades, err
}

func (r *actividadRepository) Create(ctx context.Context, actividad *models.Actividad) error {
	return r.db.WithContext(ctx).Create(actividad).Error
}

func (r *actividadRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Actividad{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
