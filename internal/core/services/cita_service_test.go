package services

import (
	"context"
	"testing"
	"time"

	"psiconnect-backend/internal/adapters/persistence/models"
	"psiconnect-backend/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCitaService() (*CitaService, *MockCitaRepository, *MockPacienteRepository, *MockPsicologoRepository, *MockEspecialidadRepository) {
	citaRepo := &MockCitaRepository{}
	pacienteRepo := &MockPacienteRepository{}
	psicologoRepo := &MockPsicologoRepository{}
	especialidadRepo := &MockEspecialidadRepository{}
	svc := NewCitaService(citaRepo, pacienteRepo, psicologoRepo, especialidadRepo)
	return svc, citaRepo, pacienteRepo, psicologoRepo, especialidadRepo
}

func conReferencias(pacienteRepo *MockPacienteRepository, psicologoRepo *MockPsicologoRepository, especialidadRepo *MockEspecialidadRepository) {
	pacienteRepo.GetByIDFunc = func(ctx context.Context, id uint) (*models.Paciente, error) {
		return &models.Paciente{ID: id, Nombre: "Ana", Apellido: "Pérez", Dni: "12345678",
			FechaNacimiento: time.Date(1995, 4, 12, 0, 0, 0, 0, time.UTC)}, nil
	}
	psicologoRepo.GetByIDFunc = func(ctx context.Context, id uint) (*models.Psicologo, error) {
		return &models.Psicologo{ID: id, Nombre: "Carlos", Apellido: "Gómez"}, nil
	}
	especialidadRepo.GetByIDFunc = func(ctx context.Context, id uint) (*models.Especialidad, error) {
		return &models.Especialidad{ID: id, Nombre: "Terapia Cognitivo-Conductual"}, nil
	}
}

func validCitaInput() *RegistrarCitaInput {
	return &RegistrarCitaInput{
		Codigo:         20260828,
		PacienteID:     5,
		PsicologoID:    2,
		EspecialidadID: 3,
		Hora:           "10:30",
		Precio:         150.50,
		Descripcion:    "Primera consulta",
	}
}

func TestRegistrarCita_OK(t *testing.T) {
	svc, citaRepo, pacienteRepo, psicologoRepo, especialidadRepo := newCitaService()
	conReferencias(pacienteRepo, psicologoRepo, especialidadRepo)

	var creada *models.Cita
	citaRepo.CreateFunc = func(ctx context.Context, cita *models.Cita) error {
		creada = cita
		cita.ID = 42
		return nil
	}

	resp, err := svc.Registrar(context.Background(), validCitaInput())
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, uint(42), resp.ID)
	assert.Equal(t, uint64(20260828), resp.Codigo)
	assert.Equal(t, "10:30", resp.Hora)
	assert.Equal(t, 150.50, resp.Precio)
	assert.Equal(t, "Primera consulta", resp.Descripcion)
	assert.Equal(t, models.EstadoPendiente, resp.Estado)
	assert.Equal(t, "Ana", resp.Paciente.Nombre)
	assert.Equal(t, "Carlos", resp.Psicologo.Nombre)
	assert.Equal(t, "Terapia Cognitivo-Conductual", resp.Especialidad.Nombre)

	require.NotNil(t, creada)
	assert.Equal(t, uint(5), creada.PacienteID)
	assert.Equal(t, uint(2), creada.PsicologoID)
	assert.Equal(t, uint(3), creada.EspecialidadID)
}

func TestRegistrarCita_PacienteNoEncontrado(t *testing.T) {
	// The paciente mock keeps its not-found default
	svc, citaRepo, pacienteRepo, psicologoRepo, especialidadRepo := newCitaService()
	conReferencias(pacienteRepo, psicologoRepo, especialidadRepo)
	pacienteRepo.GetByIDFunc = nil

	_, err := svc.Registrar(context.Background(), validCitaInput())
	assert.ErrorIs(t, err, domain.ErrPacienteNoEncontrado)
	assert.Equal(t, int32(0), citaRepo.CreateCallCount)
}

func TestRegistrarCita_PsicologoNoEncontrado(t *testing.T) {
	svc, citaRepo, pacienteRepo, psicologoRepo, especialidadRepo := newCitaService()
	conReferencias(pacienteRepo, psicologoRepo, especialidadRepo)
	psicologoRepo.GetByIDFunc = nil

	_, err := svc.Registrar(context.Background(), validCitaInput())
	assert.ErrorIs(t, err, domain.ErrPsicologoNoEncontrado)
	assert.Equal(t, int32(0), citaRepo.CreateCallCount)
}

func TestRegistrarCita_EspecialidadNoEncontrada(t *testing.T) {
	svc, citaRepo, pacienteRepo, psicologoRepo, especialidadRepo := newCitaService()
	conReferencias(pacienteRepo, psicologoRepo, especialidadRepo)
	especialidadRepo.GetByIDFunc = nil

	_, err := svc.Registrar(context.Background(), validCitaInput())
	assert.ErrorIs(t, err, domain.ErrEspecialidadNoEncontrada)
	assert.Equal(t, int32(0), citaRepo.CreateCallCount)
}

func TestRegistrarCita_PrecioNegativo(t *testing.T) {
	svc, citaRepo, pacienteRepo, psicologoRepo, especialidadRepo := newCitaService()
	conReferencias(pacienteRepo, psicologoRepo, especialidadRepo)

	input := validCitaInput()
	input.Precio = -1

	_, err := svc.Registrar(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrPrecioInvalido)
	assert.Equal(t, int32(0), citaRepo.CreateCallCount)
}

func TestRegistrarCita_PrecioCero(t *testing.T) {
	svc, _, pacienteRepo, psicologoRepo, especialidadRepo := newCitaService()
	conReferencias(pacienteRepo, psicologoRepo, especialidadRepo)

	input := validCitaInput()
	input.Precio = 0

	resp, err := svc.Registrar(context.Background(), input)
	require.NoError(t, err)
	assert.Zero(t, resp.Precio)
}

func TestRegistrarCita_CodigoRepetidoPermitido(t *testing.T) {
	// The business code carries no uniqueness rule: two registrations with
	// the same codigo both persist.
	svc, citaRepo, pacienteRepo, psicologoRepo, especialidadRepo := newCitaService()
	conReferencias(pacienteRepo, psicologoRepo, especialidadRepo)

	input := validCitaInput()
	_, err := svc.Registrar(context.Background(), input)
	require.NoError(t, err)
	_, err = svc.Registrar(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, int32(2), citaRepo.CreateCallCount)
}

func TestListarCitasPorEspecialidad(t *testing.T) {
	svc, citaRepo, _, _, _ := newCitaService()

	var recibido string
	citaRepo.ListPendientesPorEspecialidadFunc = func(ctx context.Context, nombre string) ([]*models.Cita, error) {
		recibido = nombre
		return []*models.Cita{
			{ID: 1, Codigo: 100, Estado: models.EstadoPendiente},
			{ID: 2, Codigo: 200, Estado: models.EstadoPendiente},
		}, nil
	}

	citas, err := svc.ListarPorEspecialidad(context.Background(), "Psicología Infantil")
	require.NoError(t, err)
	assert.Equal(t, "Psicología Infantil", recibido)
	require.Len(t, citas, 2)
	assert.Equal(t, uint64(100), citas[0].Codigo)
	assert.Equal(t, uint64(200), citas[1].Codigo)
}

func TestListarCitasPorPsicologo_Vacio(t *testing.T) {
	svc, citaRepo, _, _, _ := newCitaService()
	citaRepo.ListPendientesPorPsicologoFunc = func(ctx context.Context, nombre string) ([]*models.Cita, error) {
		return []*models.Cita{}, nil
	}

	citas, err := svc.ListarPorPsicologo(context.Background(), "Carlos")
	require.NoError(t, err)
	assert.Empty(t, citas)
}

func TestListarCitasPorPaciente(t *testing.T) {
	svc, citaRepo, _, _, _ := newCitaService()
	citaRepo.ListPendientesPorPacienteFunc = func(ctx context.Context, nombre string) ([]*models.Cita, error) {
		return []*models.Cita{{ID: 9, Codigo: 900, Estado: models.EstadoPendiente}}, nil
	}

	citas, err := svc.ListarPorPaciente(context.Background(), "Ana")
	require.NoError(t, err)
	require.Len(t, citas, 1)
	assert.Equal(t, uint(9), citas[0].ID)
}

func TestBuscarCitaPorCodigo(t *testing.T) {
	svc, citaRepo, _, _, _ := newCitaService()
	citaRepo.GetByCodigoFunc = func(ctx context.Context, codigo uint64) (*models.Cita, error) {
		return &models.Cita{ID: 7, Codigo: codigo, Estado: models.EstadoAtendida}, nil
	}

	resp, err := svc.BuscarPorCodigo(context.Background(), 777)
	require.NoError(t, err)
	assert.Equal(t, uint64(777), resp.Codigo)
	assert.Equal(t, models.EstadoAtendida, resp.Estado)
}

func TestBuscarCitaPorCodigo_NoEncontrada(t *testing.T) {
	svc, _, _, _, _ := newCitaService()

	_, err := svc.BuscarPorCodigo(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrCitaNoEncontrada)
}
