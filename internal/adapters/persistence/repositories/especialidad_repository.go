package repositories

import (
	"context"

	"psiconnect-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// especialidadRepository implements EspecialidadRepository interface
type especialidadRepository struct {
	db *gorm.DB
}

// NewEspecialidadRepository creates a new specialty repository
func NewEspecialidadRepository(db *gorm.DB) EspecialidadRepository {
	return &especialidadRepository{db: db}
}

// GetByID gets a specialty by ID
func (r *especialidadRepository) GetByID(ctx context.Context, id uint) (*models.Especialidad, error) {
	var especialidad models.Especialidad
	err := r.db.WithContext(ctx).Where("id_especialidad = ?", id).First(&especialidad).Error
	if err != nil {
		return nil, err
	}
	return &especialidad, nil
}

// ListActivas lists active specialties
func (r *especialidadRepository) ListActivas(ctx context.Context) ([]*models.Especialidad, error) {
	var especialidades []*models.Especialidad
	err := r.db.WithContext(ctx).Where("activo = ?", true).Find(&especialidades).Error
	return especialidades, err
}
