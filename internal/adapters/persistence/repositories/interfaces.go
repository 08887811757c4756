package repositories

import (
	"context"

	"psiconnect-backend/internal/adapters/persistence/models"
)

// UsuarioRepository defines usuario (login identity) repository interface
type UsuarioRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Usuario, error)
	GetByEmail(ctx context.Context, email string) (*models.Usuario, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// RolRepository defines role repository interface
type RolRepository interface {
	GetByNombre(ctx context.Context, nombre string) (*models.Rol, error)
}

// PacienteRepository defines patient repository interface.
// The *ConUsuario methods persist the paciente and its paired usuario inside
// one transaction; the two records never apply partially.
type PacienteRepository interface {
	CreateConUsuario(ctx context.Context, paciente *models.Paciente, usuario *models.Usuario) error
	UpdateConUsuario(ctx context.Context, paciente *models.Paciente, usuario *models.Usuario) error
	GetByID(ctx context.Context, id uint) (*models.Paciente, error)
	GetByDni(ctx context.Context, dni string) (*models.Paciente, error)
	ExistsByDni(ctx context.Context, dni string) (bool, error)
	ExistsByTelefono(ctx context.Context, telefono string) (bool, error)
	ListActivos(ctx context.Context) ([]*models.Paciente, error)
	List(ctx context.Context) ([]*models.Paciente, error)
}

// PsicologoRepository defines psychologist repository interface (read-only)
type PsicologoRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Psicologo, error)
	ListActivos(ctx context.Context) ([]*models.Psicologo, error)
}

// EspecialidadRepository defines specialty repository interface (read-only)
type EspecialidadRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Especialidad, error)
	ListActivas(ctx context.Context) ([]*models.Especialidad, error)
}

// CitaRepository defines appointment repository interface
type CitaRepository interface {
	Create(ctx context.Context, cita *models.Cita) error
	GetByID(ctx context.Context, id uint) (*models.Cita, error)
	GetByCodigo(ctx context.Context, codigo uint64) (*models.Cita, error)
	ListPendientesPorEspecialidad(ctx context.Context, nombre string) ([]*models.Cita, error)
	ListPendientesPorPsicologo(ctx context.Context, nombre string) ([]*models.Cita, error)
	ListPendientesPorPaciente(ctx context.Context, nombre string) ([]*models.Cita, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUsuarioID(ctx context.Context, usuarioID uint) error
	DeleteExpired(ctx context.Context) error
}
