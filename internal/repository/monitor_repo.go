package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/marina-vidal/gimnasio-go-api/internal/models"
)

// MonitorRepository provides access to staff accounts.
type MonitorRepository interface {
	GetByEmail(ctx context.Context, email string) (models.Monitor, error)
	GetByID(ctx context.Context, id uint) (models.Monitor, error)
	Create(ctx context.Context, monitor *models.Monitor) error
	CountByEmail(ctx context.Context, email string) (int64, error)
}

type monitorRepository struct {
	db *gorm.DB
}

// NewMonitorRepository constructs a monitor repository.
func NewMonitorRepository(db *gorm.DB) MonitorRepository {
	return &monitorRepository{db: db}
}

func (r *monitorRepository) GetByEmail(ctx context.Context, email string) (models.Monitor, error) {
	var monitor models.Monitor
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&monitor).Error; err != nil {
		return models.Monitor{}, err
	}

	return monitor, nil
}

func (r *monitorRepository) GetByID(ctx context.Context, id uint) (models.Monitor, error) {
	var monitor models.Monitor
	if err := r.db.WithContext(ctx).First(&monitor, id).Error; err != nil {
		return models.Monitor{}, err
	}

	return monitor, nil
}

func (r *monitorRepository) Create(ctx context.Context, monitor *models.Monitor) error {
	return r.db.WithContext(ctx).Create(monitor).Error
}

func (r *monitorRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Monitor{}).Where("email = ?", email).Count(&count).Error
	return count, err
}
