package services

import (
	"context"
	"errors"

	"psiconnect-backend/internal/adapters/persistence/models"
	"psiconnect-backend/internal/adapters/persistence/repositories"
	"psiconnect-backend/internal/core/domain"

	"gorm.io/gorm"
)

// CitaService handles appointment business logic
type CitaService struct {
	citaRepo         repositories.CitaRepository
	pacienteRepo     repositories.PacienteRepository
	psicologoRepo    repositories.PsicologoRepository
	especialidadRepo repositories.EspecialidadRepository
}

// NewCitaService creates a new appointment service
func NewCitaService(
	citaRepo repositories.CitaRepository,
	pacienteRepo repositories.PacienteRepository,
	psicologoRepo repositories.PsicologoRepository,
	especialidadRepo repositories.EspecialidadRepository,
) *CitaService {
	return &CitaService{
		citaRepo:         citaRepo,
		pacienteRepo:     pacienteRepo,
		psicologoRepo:    psicologoRepo,
		especialidadRepo: especialidadRepo,
	}
}

// RegistrarCitaInput represents appointment registration input.
// Codigo is an advisory caller-supplied code: no format or uniqueness rule.
type RegistrarCitaInput struct {
	Codigo         uint64  `json:"codigo"`
	PacienteID     uint    `json:"pacienteId"`
	PsicologoID    uint    `json:"psicologoId"`
	EspecialidadID uint    `json:"especialidadId"`
	Hora           string  `json:"hora"`
	Precio         float64 `json:"precio"`
	Descripcion    string  `json:"descripcion"`
}

// Registrar registers a new appointment. All three references must resolve
// before anything is persisted; a single missing reference aborts the whole
// operation and leaves the store untouched.
func (s *CitaService) Registrar(ctx context.Context, input *RegistrarCitaInput) (*models.CitaResponse, error) {
	if input.Precio < 0 {
		return nil, domain.ErrPrecioInvalido
	}

	paciente, err := s.pacienteRepo.GetByID(ctx, input.PacienteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPacienteNoEncontrado
		}
		return nil, err
	}

	psicologo, err := s.psicologoRepo.GetByID(ctx, input.PsicologoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPsicologoNoEncontrado
		}
		return nil, err
	}

	especialidad, err := s.especialidadRepo.GetByID(ctx, input.EspecialidadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEspecialidadNoEncontrada
		}
		return nil, err
	}

	cita := &models.Cita{
		ID:             0, // system-assigned, caller-supplied IDs are ignored
		Codigo:         input.Codigo,
		PacienteID:     paciente.ID,
		Paciente:       *paciente,
		PsicologoID:    psicologo.ID,
		Psicologo:      *psicologo,
		EspecialidadID: especialidad.ID,
		Especialidad:   *especialidad,
		Hora:           input.Hora,
		Precio:         input.Precio,
		Descripcion:    input.Descripcion,
		Estado:         models.EstadoPendiente,
	}

	if err := s.citaRepo.Create(ctx, cita); err != nil {
		return nil, err
	}

	return cita.ToResponse(), nil
}

// ListarPorEspecialidad lists pending appointments by exact specialty name
func (s *CitaService) ListarPorEspecialidad(ctx context.Context, nombre string) ([]*models.CitaResponse, error) {
	citas, err := s.citaRepo.ListPendientesPorEspecialidad(ctx, nombre)
	if err != nil {
		return nil, err
	}
	return toCitaResponses(citas), nil
}

// ListarPorPsicologo lists pending appointments by exact psychologist name
func (s *CitaService) ListarPorPsicologo(ctx context.Context, nombre string) ([]*models.CitaResponse, error) {
	citas, err := s.citaRepo.ListPendientesPorPsicologo(ctx, nombre)
	if err != nil {
		return nil, err
	}
	return toCitaResponses(citas), nil
}

// ListarPorPaciente lists pending appointments by exact patient name
func (s *CitaService) ListarPorPaciente(ctx context.Context, nombre string) ([]*models.CitaResponse, error) {
	citas, err := s.citaRepo.ListPendientesPorPaciente(ctx, nombre)
	if err != nil {
		return nil, err
	}
	return toCitaResponses(citas), nil
}

// BuscarPorCodigo finds an appointment by its business code
func (s *CitaService) BuscarPorCodigo(ctx context.Context, codigo uint64) (*models.CitaResponse, error) {
	cita, err := s.citaRepo.GetByCodigo(ctx, codigo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCitaNoEncontrada
		}
		return nil, err
	}
	return cita.ToResponse(), nil
}

func toCitaResponses(citas []*models.Cita) []*models.CitaResponse {
	responses := make([]*models.CitaResponse, len(citas))
	for i, c := range citas {
		responses[i] = c.ToResponse()
	}
	return responses
}
