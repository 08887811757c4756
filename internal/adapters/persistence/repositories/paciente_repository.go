package repositories

import (
	"context"

	"psiconnect-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// pacienteRepository implements PacienteRepository interface
type pacienteRepository struct {
	db *gorm.DB
}

// NewPacienteRepository creates a new patient repository
func NewPacienteRepository(db *gorm.DB) PacienteRepository {
	return &pacienteRepository{db: db}
}

// CreateConUsuario persists the usuario and the paciente in one transaction.
// The paciente gets its UsuarioID from the usuario created in the same tx.
func (r *pacienteRepository) CreateConUsuario(ctx context.Context, paciente *models.Paciente, usuario *models.Usuario) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(usuario).Error; err != nil {
			return err
		}
		paciente.UsuarioID = usuario.ID
		paciente.Usuario = *usuario
		return tx.Create(paciente).Error
	})
}

// UpdateConUsuario saves the paciente and its paired usuario in one
// transaction; either both writes apply or neither does.
func (r *pacienteRepository) UpdateConUsuario(ctx context.Context, paciente *models.Paciente, usuario *models.Usuario) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Roles").Save(usuario).Error; err != nil {
			return err
		}
		return tx.Omit("Usuario").Save(paciente).Error
	})
}

// GetByID gets a patient by ID
func (r *pacienteRepository) GetByID(ctx context.Context, id uint) (*models.Paciente, error) {
	var paciente models.Paciente
	err := r.db.WithContext(ctx).Preload("Usuario.Roles").Where("id_paciente = ?", id).First(&paciente).Error
	if err != nil {
		return nil, err
	}
	return &paciente, nil
}

// GetByDni gets a patient by DNI, paired usuario preloaded
func (r *pacienteRepository) GetByDni(ctx context.Context, dni string) (*models.Paciente, error) {
	var paciente models.Paciente
	err := r.db.WithContext(ctx).Preload("Usuario.Roles").Where("dni = ?", dni).First(&paciente).Error
	if err != nil {
		return nil, err
	}
	return &paciente, nil
}

// ExistsByDni checks if a DNI is already used by a patient
func (r *pacienteRepository) ExistsByDni(ctx context.Context, dni string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Paciente{}).Where("dni = ?", dni).Count(&count).Error
	return count > 0, err
}

// ExistsByTelefono checks if a phone is already used by a patient
func (r *pacienteRepository) ExistsByTelefono(ctx context.Context, telefono string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Paciente{}).Where("telefono = ?", telefono).Count(&count).Error
	return count > 0, err
}

// ListActivos lists active patients
func (r *pacienteRepository) ListActivos(ctx context.Context) ([]*models.Paciente, error) {
	var pacientes []*models.Paciente
	err := r.db.WithContext(ctx).Where("activo = ?", true).Find(&pacientes).Error
	return pacientes, err
}

// List lists all patients
func (r *pacienteRepository) List(ctx context.Context) ([]*models.Paciente, error) {
	var pacientes []*models.Paciente
	err := r.db.WithContext(ctx).Find(&pacientes).Error
	return pacientes, err
}
