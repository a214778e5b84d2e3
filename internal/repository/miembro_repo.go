package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/marina-vidal/gimnasio-go-api/internal/models"
)

// MiembroFilter narrows member listings. All fields are optional.
type MiembroFilter struct {
	SeccionID *uint
	GrupoID   *uint
	Buscar    string
}

// MiembroRepository provides access to member records with their section
// and group preloaded.
type MiembroRepository interface {
	List(ctx context.Context, filter MiembroFilter) ([]models.Miembro, error)
	GetByID(ctx context.Context, id uint) (models.Miembro, error)
	Create(ctx context.Context, miembro *models.Miembro) error
	Update(ctx context.Context, id uint, updates map[string]interface{}) (models.Miembro, error)
	Delete(ctx context.Context, id uint) error
	CountByNIP(ctx context.Context, nip uint, excludeID uint) (int64, error)
}

type miembroRepository struct {
	db *gorm.DB
}

// NewMiembroRepository constructs a member repository.
func NewMiembroRepository(db *gorm.DB) MiembroRepository {
	return &miembroRepository{db: db}
}

func (r *miembroRepository) List(ctx context.Context, filter MiembroFilter) ([]models.Miembro, error) {
	query := r.db.WithContext(ctx).Model(&models.Miembro{}).
		Preload("Seccion").
		Preload("Grupo")

	if filter.SeccionID != nil {
		query = query.Where("seccion_id = ?", *filter.SeccionID)
	}

	if filter.GrupoID != nil {
		query = query.Where("grupo_id = ?", *filter.GrupoID)
	}

	if buscar := strings.TrimSpace(filter.Buscar); buscar != "" {
		pattern := "%" + strings.ToLower(buscar) + "%"
		query = query.Where("LOWER(nombre) LIKE ? OR LOWER(apellidos) LIKE ?", pattern, pattern)
	}

	var miembros []models.Miembro
	if err := query.Order("id").Find(&miembros).Error; err != nil {
		return nil, err
	}

	return miembros, nil
}

func (r *miembroRepository) GetByID(ctx context.Context, id uint) (models.Miembro, error) {
	var miembro models.Miembro
	err := r.db.WithContext(ctx).
		Preload("Seccion").
		Preload("Grupo").
		First(&miembro, id).Error
	if err != nil {
		return models.Miembro{}, err
	}

	return miembro, nil
}

func (r *miembroRepository) Create(ctx context.Context, miembro *models.Miembro) error {
	return r.db.WithContext(ctx).Create(miembro).Error
}

func (r *miembroRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) (models.Miembro, error) {
	result := r.db.WithContext(ctx).Model(&models.Miembro{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return models.Miembro{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Miembro{}, gorm.ErrRecordNotFound
	}

	return r.GetByID(ctx, id)
}

// Delete removes exactly the given row. Log records referencing the member
// are left in place; the deletion policy is deliberately permissive.
func (r *miembroRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Miembro{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *miembroRepository) CountByNIP(ctx context.Context, nip uint, excludeID uint) (int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Miembro{}).Where("nip = ?", nip)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count, err
}
