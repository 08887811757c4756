package services

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"psiconnect-backend/internal/adapters/persistence/models"
	"psiconnect-backend/internal/adapters/persistence/repositories"
	"psiconnect-backend/internal/core/domain"
	"psiconnect-backend/internal/pkg/password"

	"gorm.io/gorm"
)

const edadMinima = 18

var (
	dniRegex      = regexp.MustCompile(`^\d{8}$`)
	telefonoRegex = regexp.MustCompile(`^\d{9}$`)
	emailRegex    = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	espacios      = regexp.MustCompile(`\s`)
)

// PacienteService handles patient registration and profile updates
type PacienteService struct {
	pacienteRepo repositories.PacienteRepository
	usuarioRepo  repositories.UsuarioRepository
	rolRepo      repositories.RolRepository
}

// NewPacienteService creates a new patient service
func NewPacienteService(
	pacienteRepo repositories.PacienteRepository,
	usuarioRepo repositories.UsuarioRepository,
	rolRepo repositories.RolRepository,
) *PacienteService {
	return &PacienteService{
		pacienteRepo: pacienteRepo,
		usuarioRepo:  usuarioRepo,
		rolRepo:      rolRepo,
	}
}

// RegistrarPacienteInput represents patient registration input
type RegistrarPacienteInput struct {
	Dni             string `json:"dni"`
	Telefono        string `json:"telefono"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	FechaNacimiento string `json:"fechaNacimiento"` // YYYY-MM-DD
	Nombre          string `json:"nombre"`
	Apellido        string `json:"apellido"`
	Genero          string `json:"genero"`
	Distrito        string `json:"distrito"`
	Direccion       string `json:"direccion"`
}

// ModificarPacienteInput represents a partial update. A nil (or blank)
// field is absent and leaves the stored value untouched.
type ModificarPacienteInput struct {
	Dni             *string `json:"dni"`
	Telefono        *string `json:"telefono"`
	Email           *string `json:"email"`
	Password        *string `json:"password"`
	FechaNacimiento *string `json:"fechaNacimiento"`
	Nombre          *string `json:"nombre"`
	Apellido        *string `json:"apellido"`
	Genero          *string `json:"genero"`
	Distrito        *string `json:"distrito"`
	Direccion       *string `json:"direccion"`
}

// Registrar validates and registers a new patient together with its login
// identity. Validation and uniqueness checks all run before any write; the
// usuario and the paciente are then persisted in a single transaction.
func (s *PacienteService) Registrar(ctx context.Context, input *RegistrarPacienteInput) (*models.PacienteResponse, error) {
	dni := espacios.ReplaceAllString(input.Dni, "")
	if !dniRegex.MatchString(dni) {
		return nil, domain.ErrDniInvalido
	}

	telefono := espacios.ReplaceAllString(input.Telefono, "")
	if !telefonoRegex.MatchString(telefono) {
		return nil, domain.ErrTelefonoInvalido
	}

	if !emailRegex.MatchString(input.Email) {
		return nil, domain.ErrEmailInvalido
	}

	fechaNacimiento, err := time.Parse("2006-01-02", input.FechaNacimiento)
	if err != nil {
		return nil, domain.ErrFechaNacimientoInvalida
	}
	if edadEnAnios(fechaNacimiento, time.Now()) < edadMinima {
		return nil, domain.ErrMenorDeEdad
	}

	// Advisory uniqueness checks; the unique indexes are the real guarantee
	// under concurrent registrations.
	existe, err := s.usuarioRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, domain.ErrEmailRegistrado
	}

	existe, err = s.pacienteRepo.ExistsByDni(ctx, dni)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, domain.ErrDniRegistrado
	}

	existe, err = s.pacienteRepo.ExistsByTelefono(ctx, telefono)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, domain.ErrTelefonoRegistrado
	}

	rol, err := s.rolRepo.GetByNombre(ctx, models.RolPaciente)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRolNoConfigurado
		}
		return nil, err
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	usuario := &models.Usuario{
		Email:    input.Email,
		Password: hash,
		Dni:      dni,
		Roles:    []models.Rol{*rol},
	}

	paciente := &models.Paciente{
		Nombre:          input.Nombre,
		Apellido:        input.Apellido,
		Dni:             dni,
		FechaNacimiento: fechaNacimiento,
		Genero:          input.Genero,
		Distrito:        input.Distrito,
		Direccion:       input.Direccion,
		Telefono:        telefono,
		Email:           input.Email,
		Activo:          true,
	}

	if err := s.pacienteRepo.CreateConUsuario(ctx, paciente, usuario); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, s.mapDuplicado(ctx, dni, telefono, input.Email)
		}
		return nil, err
	}

	return paciente.ToResponse(), nil
}

// Modificar applies a partial update to the patient identified by dni.
// Only present, non-blank fields are considered; email and password changes
// propagate to the paired usuario record within the same transaction.
func (s *PacienteService) Modificar(ctx context.Context, dni string, input *ModificarPacienteInput) (*models.PacienteResponse, error) {
	// Format validation runs only on present fields. A dni in the body is
	// validated but never applied; the document number is not updatable.
	if presente(input.Dni) {
		if !dniRegex.MatchString(espacios.ReplaceAllString(*input.Dni, "")) {
			return nil, domain.ErrDniInvalido
		}
	}

	var telefonoNuevo string
	if presente(input.Telefono) {
		telefonoNuevo = espacios.ReplaceAllString(*input.Telefono, "")
		if !telefonoRegex.MatchString(telefonoNuevo) {
			return nil, domain.ErrTelefonoInvalido
		}
	}

	if presente(input.Email) && !emailRegex.MatchString(*input.Email) {
		return nil, domain.ErrEmailInvalido
	}

	var fechaNueva time.Time
	if presente(input.FechaNacimiento) {
		var err error
		fechaNueva, err = time.Parse("2006-01-02", *input.FechaNacimiento)
		if err != nil {
			return nil, domain.ErrFechaNacimientoInvalida
		}
	}

	paciente, err := s.pacienteRepo.GetByDni(ctx, dni)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPacienteNoEncontrado
		}
		return nil, err
	}
	usuario := &paciente.Usuario

	cambios := false
	emailCambiado := false

	if presente(input.Email) && *input.Email != usuario.Email {
		existe, err := s.usuarioRepo.ExistsByEmail(ctx, *input.Email)
		if err != nil {
			return nil, err
		}
		if existe {
			return nil, domain.ErrEmailRegistradoOtro
		}
		usuario.Email = *input.Email
		paciente.Email = *input.Email
		cambios = true
		emailCambiado = true
	}

	if presente(input.Password) {
		hash, err := password.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		usuario.Password = hash
		cambios = true
	}

	if presente(input.Telefono) && telefonoNuevo != paciente.Telefono {
		existe, err := s.pacienteRepo.ExistsByTelefono(ctx, telefonoNuevo)
		if err != nil {
			return nil, err
		}
		if existe {
			return nil, domain.ErrTelefonoRegistradoOtro
		}
		paciente.Telefono = telefonoNuevo
		cambios = true
	}

	if presente(input.Nombre) {
		paciente.Nombre = *input.Nombre
		cambios = true
	}
	if presente(input.Apellido) {
		paciente.Apellido = *input.Apellido
		cambios = true
	}
	if presente(input.Genero) {
		paciente.Genero = *input.Genero
		cambios = true
	}
	if presente(input.Distrito) {
		paciente.Distrito = *input.Distrito
		cambios = true
	}
	if presente(input.Direccion) {
		paciente.Direccion = *input.Direccion
		cambios = true
	}
	if presente(input.FechaNacimiento) {
		// No age re-validation on update.
		paciente.FechaNacimiento = fechaNueva
		cambios = true
	}

	if !cambios {
		return nil, domain.ErrSinCambios
	}

	if err := s.pacienteRepo.UpdateConUsuario(ctx, paciente, usuario); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// The write lost a race the advisory checks did not see. The
			// email branch applies only when this request changed the email;
			// the patient's own unchanged email always exists in the store.
			if emailCambiado {
				if existe, e := s.usuarioRepo.ExistsByEmail(ctx, usuario.Email); e == nil && existe {
					return nil, domain.ErrEmailRegistradoOtro
				}
			}
			return nil, domain.ErrTelefonoRegistradoOtro
		}
		return nil, err
	}

	return paciente.ToResponse(), nil
}

// ListarPorDni finds a patient by DNI
func (s *PacienteService) ListarPorDni(ctx context.Context, dni string) (*models.PacienteResponse, error) {
	paciente, err := s.pacienteRepo.GetByDni(ctx, dni)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPacienteNoEncontrado
		}
		return nil, err
	}
	return paciente.ToResponse(), nil
}

// ListarActivos lists active patients
func (s *PacienteService) ListarActivos(ctx context.Context) ([]*models.PacienteResponse, error) {
	pacientes, err := s.pacienteRepo.ListActivos(ctx)
	if err != nil {
		return nil, err
	}
	return toPacienteResponses(pacientes), nil
}

// ListarTodos lists every patient
func (s *PacienteService) ListarTodos(ctx context.Context) ([]*models.PacienteResponse, error) {
	pacientes, err := s.pacienteRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toPacienteResponses(pacientes), nil
}

// mapDuplicado resolves a storage-level duplicate-key conflict to the field
// that lost the race. The in-service existence checks are only a fast path;
// the unique indexes on email/dni/telefono are the actual guarantee.
func (s *PacienteService) mapDuplicado(ctx context.Context, dni, telefono, email string) error {
	if existe, err := s.usuarioRepo.ExistsByEmail(ctx, email); err == nil && existe {
		return domain.ErrEmailRegistrado
	}
	if existe, err := s.pacienteRepo.ExistsByDni(ctx, dni); err == nil && existe {
		return domain.ErrDniRegistrado
	}
	if existe, err := s.pacienteRepo.ExistsByTelefono(ctx, telefono); err == nil && existe {
		return domain.ErrTelefonoRegistrado
	}
	return domain.ErrDniRegistrado
}

// presente reports whether an optional string field was sent with content
func presente(p *string) bool {
	return p != nil && strings.TrimSpace(*p) != ""
}

// edadEnAnios computes whole calendar years between nacimiento and ref
func edadEnAnios(nacimiento, ref time.Time) int {
	anios := ref.Year() - nacimiento.Year()
	if ref.Month() < nacimiento.Month() ||
		(ref.Month() == nacimiento.Month() && ref.Day() < nacimiento.Day()) {
		anios--
	}
	return anios
}

func toPacienteResponses(pacientes []*models.Paciente) []*models.PacienteResponse {
	responses := make([]*models.PacienteResponse, len(pacientes))
	for i, p := range pacientes {
		responses[i] = p.ToResponse()
	}
	return responses
}
