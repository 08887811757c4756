package repositories

import (
	"context"

	"psiconnect-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// rolRepository implements RolRepository interface
type rolRepository struct {
	db *gorm.DB
}

// NewRolRepository creates a new role repository
func NewRolRepository(db *gorm.DB) RolRepository {
	return &rolRepository{db: db}
}

// GetByNombre gets a role by name
func (r *rolRepository) GetByNombre(ctx context.Context, nombre string) (*models.Rol, error) {
	var rol models.Rol
	err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&rol).Error
	if err != nil {
		return nil, err
	}
	return &rol, nil
}
