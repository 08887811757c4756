package repositories

import (
	"context"

	"psiconnect-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// citaRepository implements CitaRepository interface
type citaRepository struct {
	db *gorm.DB
}

// NewCitaRepository creates a new appointment repository
func NewCitaRepository(db *gorm.DB) CitaRepository {
	return &citaRepository{db: db}
}

// Create creates a new appointment
func (r *citaRepository) Create(ctx context.Context, cita *models.Cita) error {
	return r.db.WithContext(ctx).Omit("Paciente", "Psicologo", "Especialidad").Create(cita).Error
}

// GetByID gets an appointment by ID with its references
func (r *citaRepository) GetByID(ctx context.Context, id uint) (*models.Cita, error) {
	var cita models.Cita
	err := r.preloaded(ctx).Where("id_cita = ?", id).First(&cita).Error
	if err != nil {
		return nil, err
	}
	return &cita, nil
}

// GetByCodigo gets an appointment by its business code
func (r *citaRepository) GetByCodigo(ctx context.Context, codigo uint64) (*models.Cita, error) {
	var cita models.Cita
	err := r.preloaded(ctx).Where("codigo = ?", codigo).First(&cita).Error
	if err != nil {
		return nil, err
	}
	return &cita, nil
}

// ListPendientesPorEspecialidad lists pending appointments by exact specialty name
func (r *citaRepository) ListPendientesPorEspecialidad(ctx context.Context, nombre string) ([]*models.Cita, error) {
	var citas []*models.Cita
	err := r.preloaded(ctx).
		Joins("JOIN especialidades ON especialidades.id_especialidad = citas.especialidad_id").
		Where("especialidades.nombre = ? AND citas.estado = ?", nombre, models.EstadoPendiente).
		Find(&citas).Error
	return citas, err
}

// ListPendientesPorPsicologo lists pending appointments by exact psychologist name
func (r *citaRepository) ListPendientesPorPsicologo(ctx context.Context, nombre string) ([]*models.Cita, error) {
	var citas []*models.Cita
	err := r.preloaded(ctx).
		Joins("JOIN psicologos ON psicologos.id_psicologo = citas.psicologo_id").
		Where("psicologos.nombre = ? AND citas.estado = ?", nombre, models.EstadoPendiente).
		Find(&citas).Error
	return citas, err
}

// ListPendientesPorPaciente lists pending appointments by exact patient name
func (r *citaRepository) ListPendientesPorPaciente(ctx context.Context, nombre string) ([]*models.Cita, error) {
	var citas []*models.Cita
	err := r.preloaded(ctx).
		Joins("JOIN pacientes ON pacientes.id_paciente = citas.paciente_id").
		Where("pacientes.nombre = ? AND citas.estado = ?", nombre, models.EstadoPendiente).
		Find(&citas).Error
	return citas, err
}

func (r *citaRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Paciente").
		Preload("Psicologo").
		Preload("Especialidad")
}
