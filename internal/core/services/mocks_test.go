package services

import (
	"context"
	"sync/atomic"

	"psiconnect-backend/internal/adapters/persistence/models"
	"psiconnect-backend/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Compile-time checks that the mocks satisfy the repository interfaces
var (
	_ repositories.UsuarioRepository      = (*MockUsuarioRepository)(nil)
	_ repositories.RolRepository          = (*MockRolRepository)(nil)
	_ repositories.PacienteRepository     = (*MockPacienteRepository)(nil)
	_ repositories.PsicologoRepository    = (*MockPsicologoRepository)(nil)
	_ repositories.EspecialidadRepository = (*MockEspecialidadRepository)(nil)
	_ repositories.CitaRepository         = (*MockCitaRepository)(nil)
	_ repositories.RefreshTokenRepository = (*MockRefreshTokenRepository)(nil)
)

// MockUsuarioRepository is a mock implementation of UsuarioRepository
type MockUsuarioRepository struct {
	GetByIDFunc       func(ctx context.Context, id uint) (*models.Usuario, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*models.Usuario, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
}

func (m *MockUsuarioRepository) GetByID(ctx context.Context, id uint) (*models.Usuario, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockUsuarioRepository) GetByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockUsuarioRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

// MockRolRepository is a mock implementation of RolRepository
type MockRolRepository struct {
	GetByNombreFunc func(ctx context.Context, nombre string) (*models.Rol, error)
}

func (m *MockRolRepository) GetByNombre(ctx context.Context, nombre string) (*models.Rol, error) {
	if m.GetByNombreFunc != nil {
		return m.GetByNombreFunc(ctx, nombre)
	}
	return &models.Rol{ID: 1, Nombre: nombre}, nil
}

// MockPacienteRepository is a mock implementation of PacienteRepository
type MockPacienteRepository struct {
	CreateConUsuarioFunc func(ctx context.Context, paciente *models.Paciente, usuario *models.Usuario) error
	UpdateConUsuarioFunc func(ctx context.Context, paciente *models.Paciente, usuario *models.Usuario) error
	GetByIDFunc          func(ctx context.Context, id uint) (*models.Paciente, error)
	GetByDniFunc         func(ctx context.Context, dni string) (*models.Paciente, error)
	ExistsByDniFunc      func(ctx context.Context, dni string) (bool, error)
	ExistsByTelefonoFunc func(ctx context.Context, telefono string) (bool, error)
	ListActivosFunc      func(ctx context.Context) ([]*models.Paciente, error)
	ListFunc             func(ctx context.Context) ([]*models.Paciente, error)

	CreateConUsuarioCallCount int32
	UpdateConUsuarioCallCount int32
}

func (m *MockPacienteRepository) CreateConUsuario(ctx context.Context, paciente *models.Paciente, usuario *models.Usuario) error {
	atomic.AddInt32(&m.CreateConUsuarioCallCount, 1)
	if m.CreateConUsuarioFunc != nil {
		return m.CreateConUsuarioFunc(ctx, paciente, usuario)
	}
	return nil
}

func (m *MockPacienteRepository) UpdateConUsuario(ctx context.Context, paciente *models.Paciente, usuario *models.Usuario) error {
	atomic.AddInt32(&m.UpdateConUsuarioCallCount, 1)
	if m.UpdateConUsuarioFunc != nil {
		return m.UpdateConUsuarioFunc(ctx, paciente, usuario)
	}
	return nil
}

func (m *MockPacienteRepository) GetByID(ctx context.Context, id uint) (*models.Paciente, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockPacienteRepository) GetByDni(ctx context.Context, dni string) (*models.Paciente, error) {
	if m.GetByDniFunc != nil {
		return m.GetByDniFunc(ctx, dni)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockPacienteRepository) ExistsByDni(ctx context.Context, dni string) (bool, error) {
	if m.ExistsByDniFunc != nil {
		return m.ExistsByDniFunc(ctx, dni)
	}
	return false, nil
}

func (m *MockPacienteRepository) ExistsByTelefono(ctx context.Context, telefono string) (bool, error) {
	if m.ExistsByTelefonoFunc != nil {
		return m.ExistsByTelefonoFunc(ctx, telefono)
	}
	return false, nil
}

func (m *MockPacienteRepository) ListActivos(ctx context.Context) ([]*models.Paciente, error) {
	if m.ListActivosFunc != nil {
		return m.ListActivosFunc(ctx)
	}
	return nil, nil
}

func (m *MockPacienteRepository) List(ctx context.Context) ([]*models.Paciente, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

// MockPsicologoRepository is a mock implementation of PsicologoRepository
type MockPsicologoRepository struct {
	GetByIDFunc     func(ctx context.Context, id uint) (*models.Psicologo, error)
	ListActivosFunc func(ctx context.Context) ([]*models.Psicologo, error)
}

func (m *MockPsicologoRepository) GetByID(ctx context.Context, id uint) (*models.Psicologo, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockPsicologoRepository) ListActivos(ctx context.Context) ([]*models.Psicologo, error) {
	if m.ListActivosFunc != nil {
		return m.ListActivosFunc(ctx)
	}
	return nil, nil
}

// MockEspecialidadRepository is a mock implementation of EspecialidadRepository
type MockEspecialidadRepository struct {
	GetByIDFunc     func(ctx context.Context, id uint) (*models.Especialidad, error)
	ListActivasFunc func(ctx context.Context) ([]*models.Especialidad, error)
}

func (m *MockEspecialidadRepository) GetByID(ctx context.Context, id uint) (*models.Especialidad, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockEspecialidadRepository) ListActivas(ctx context.Context) ([]*models.Especialidad, error) {
	if m.ListActivasFunc != nil {
		return m.ListActivasFunc(ctx)
	}
	return nil, nil
}

// MockCitaRepository is a mock implementation of CitaRepository
type MockCitaRepository struct {
	CreateFunc                        func(ctx context.Context, cita *models.Cita) error
	GetByIDFunc                       func(ctx context.Context, id uint) (*models.Cita, error)
	GetByCodigoFunc                   func(ctx context.Context, codigo uint64) (*models.Cita, error)
	ListPendientesPorEspecialidadFunc func(ctx context.Context, nombre string) ([]*models.Cita, error)
	ListPendientesPorPsicologoFunc    func(ctx context.Context, nombre string) ([]*models.Cita, error)
	ListPendientesPorPacienteFunc     func(ctx context.Context, nombre string) ([]*models.Cita, error)

	CreateCallCount int32
}

func (m *MockCitaRepository) Create(ctx context.Context, cita *models.Cita) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, cita)
	}
	return nil
}

func (m *MockCitaRepository) GetByID(ctx context.Context, id uint) (*models.Cita, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockCitaRepository) GetByCodigo(ctx context.Context, codigo uint64) (*models.Cita, error) {
	if m.GetByCodigoFunc != nil {
		return m.GetByCodigoFunc(ctx, codigo)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockCitaRepository) ListPendientesPorEspecialidad(ctx context.Context, nombre string) ([]*models.Cita, error) {
	if m.ListPendientesPorEspecialidadFunc != nil {
		return m.ListPendientesPorEspecialidadFunc(ctx, nombre)
	}
	return nil, nil
}

func (m *MockCitaRepository) ListPendientesPorPsicologo(ctx context.Context, nombre string) ([]*models.Cita, error) {
	if m.ListPendientesPorPsicologoFunc != nil {
		return m.ListPendientesPorPsicologoFunc(ctx, nombre)
	}
	return nil, nil
}

func (m *MockCitaRepository) ListPendientesPorPaciente(ctx context.Context, nombre string) ([]*models.Cita, error) {
	if m.ListPendientesPorPacienteFunc != nil {
		return m.ListPendientesPorPacienteFunc(ctx, nombre)
	}
	return nil, nil
}

// MockRefreshTokenRepository is a mock implementation of RefreshTokenRepository
type MockRefreshTokenRepository struct {
	CreateFunc               func(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHashFunc       func(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	RevokeFunc               func(ctx context.Context, id uint) error
	RevokeByTokenHashFunc    func(ctx context.Context, tokenHash string) error
	RevokeAllByUsuarioIDFunc func(ctx context.Context, usuarioID uint) error
	DeleteExpiredFunc        func(ctx context.Context) error

	CreateCallCount int32
}

func (m *MockRefreshTokenRepository) Create(ctx context.Context, token *models.RefreshToken) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, token)
	}
	return nil
}

func (m *MockRefreshTokenRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	if m.GetByTokenHashFunc != nil {
		return m.GetByTokenHashFunc(ctx, tokenHash)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockRefreshTokenRepository) Revoke(ctx context.Context, id uint) error {
	if m.RevokeFunc != nil {
		return m.RevokeFunc(ctx, id)
	}
	return nil
}

func (m *MockRefreshTokenRepository) RevokeByTokenHash(ctx context.Context, tokenHash string) error {
	if m.RevokeByTokenHashFunc != nil {
		return m.RevokeByTokenHashFunc(ctx, tokenHash)
	}
	return nil
}

func (m *MockRefreshTokenRepository) RevokeAllByUsuarioID(ctx context.Context, usuarioID uint) error {
	if m.RevokeAllByUsuarioIDFunc != nil {
		return m.RevokeAllByUsuarioIDFunc(ctx, usuarioID)
	}
	return nil
}

func (m *MockRefreshTokenRepository) DeleteExpired(ctx context.Context) error {
	if m.DeleteExpiredFunc != nil {
		return m.DeleteExpiredFunc(ctx)
	}
	return nil
}
