package repositories

import (
	"context"

	"psiconnect-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// psicologoRepository implements PsicologoRepository interface
type psicologoRepository struct {
	db *gorm.DB
}

// NewPsicologoRepository creates a new psychologist repository
func NewPsicologoRepository(db *gorm.DB) PsicologoRepository {
	return &psicologoRepository{db: db}
}

// GetByID gets a psychologist by ID
func (r *psicologoRepository) GetByID(ctx context.Context, id uint) (*models.Psicologo, error) {
	var psicologo models.Psicologo
	err := r.db.WithContext(ctx).Where("id_psicologo = ?", id).First(&psicologo).Error
	if err != nil {
		return nil, err
	}
	return &psicologo, nil
}

// ListActivos lists active psychologists
func (r *psicologoRepository) ListActivos(ctx context.Context) ([]*models.Psicologo, error) {
	var psicologos []*models.Psicologo
	err := r.db.WithContext(ctx).Where("activo = ?", true).Find(&psicologos).Error
	return psicologos, err
}
