package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/marina-vidal/gimnasio-go-api/internal/models"
	"github.com/marina-vidal/gimnasio-go-api/internal/repository"
)

func seedTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Seccion{}, &models.Grupo{}, &models.Turno{}, &models.Actividad{}, &models.Monitor{}))
	return db
}

func TestSeedServiceGuards(t *testing.T) {
	db := seedTestDB(t)
	monitores := repository.NewMonitorRepository(db)

	disabled := NewSeedService(db, monitores, false, "secreto", testLogger())
	_, err := disabled.Seed(context.Background(), "secreto")
	require.ErrorIs(t, err, ErrSeedDisabled)

	enabled := NewSeedService(db, monitores, true, "secreto", testLogger())
	_, err = enabled.Seed(context.Background(), "equivocado")
	require.ErrorIs(t, err, ErrSeedUnauthorized)

	sinToken := NewSeedService(db, monitores, true, "", testLogger())
	_, err = sinToken.Seed(context.Background(), "")
	require.ErrorIs(t, err, ErrSeedUnauthorized, "an empty configured token never matches")
}

func TestSeedServiceIsIdempotent(t *testing.T) {
	db := seedTestDB(t)
	monitores := repository.NewMonitorRepository(db)
	svc := NewSeedService(db, monitores, true, "secreto", testLogger())

	primera, err := svc.Seed(context.Background(), "secreto")
	require.NoError(t, err)
	require.Equal(t, int64(3), primera.Secciones)
	require.Equal(t, int64(3), primera.Grupos)
	require.Equal(t, int64(3), primera.Turnos)
	require.Equal(t, int64(3), primera.Actividades)
	require.Equal(t, int64(1), primera.Monitores)

	segunda, err := svc.Seed(context.Background(), "secreto")
	require.NoError(t, err)
	require.Zero(t, segunda.Secciones)
	require.Zero(t, segunda.Monitores)

	var count int64
	require.NoError(t, db.Model(&models.Seccion{}).Count(&count).Error)
	require.Equal(t, int64(3), count)

	monitor, err := monitores.GetByEmail(context.Background(), "monitor@gimnasio.local")
	require.NoError(t, err)
	require.NotEqual(t, "cambiame", monitor.PasswordHash, "the demo password is stored hashed")
}
