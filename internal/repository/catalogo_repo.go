package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/marina-vidal/gimnasio-go-api/internal/models"
)

// CatalogoRepository reads the static reference tables: sections, groups
// and shifts. These are seeded out-of-band and never edited from the UI.
type CatalogoRepository interface {
	Secciones(ctx context.Context) ([]models.Seccion, error)
	Grupos(ctx context.Context) ([]models.Grupo, error)
	Turnos(ctx context.Context) ([]models.Turno, error)
	SeccionExists(ctx context.Context, id uint) (bool, error)
	GrupoExists(ctx context.Context, id uint) (bool, error)
	TurnoExists(ctx context.Context, id uint) (bool, error)
}

type catalogoRepository struct {
	db *gorm.DB
}

// NewCatalogoRepository constructs the reference-data repository.
func NewCatalogoRepository(db *gorm.DB) CatalogoRepository {
	return &catalogoRepository{db: db}
}

func (r *catalogoRepository) Secciones(ctx context.Context) ([]models.Seccion, error) {
	var secciones []models.Seccion
	err := r.db.WithContext(ctx).Order("id").Find(&secciones).Error
	return secciones, err
}

func (r *catalogoRepository) Grupos(ctx context.Context) ([]models.Grupo, error) {
	var grupos []models.Grupo
	err := r.db.WithContext(ctx).Order("id").Find(&grupos).Error
	return grupos, err
}

func (r *catalogoRepository) Turnos(ctx context.Context) ([]models.Turno, error) {
	var turnos []models.Turno
	err := r.db.WithContext(ctx).Order("id").Find(&turnos).Error
	return turnos, err
}

func (r *catalogoRepository) SeccionExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &models.Seccion{}, id)
}

func (r *catalogoRepository) GrupoExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &models.Grupo{}, id)
}

func (r *catalogoRepository) TurnoExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &models.Turno{}, id)
}

func (r *catalogoRepository) exists(ctx context.Context, model interface{}, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
