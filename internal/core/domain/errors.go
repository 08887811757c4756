package domain

import "errors"

// Reference resolution errors
var (
	ErrPacienteNoEncontrado     = errors.New("Paciente no encontrado")
	ErrPsicologoNoEncontrado    = errors.New("Psicólogo no encontrado")
	ErrEspecialidadNoEncontrada = errors.New("Especialidad no encontrada")
	ErrCitaNoEncontrada         = errors.New("Cita no encontrada")
)

// Field format errors
var (
	ErrDniInvalido             = errors.New("El DNI debe tener exactamente 8 dígitos numéricos")
	ErrTelefonoInvalido        = errors.New("El teléfono debe tener exactamente 9 dígitos numéricos")
	ErrEmailInvalido           = errors.New("El formato del email es inválido")
	ErrFechaNacimientoInvalida = errors.New("El formato de la fecha de nacimiento es inválido (YYYY-MM-DD)")
	ErrMenorDeEdad             = errors.New("Debe ser mayor de edad (18 años o más)")
	ErrPrecioInvalido          = errors.New("El precio no puede ser negativo")
)

// Uniqueness errors. The *Otro variants carry the update-path wording.
var (
	ErrEmailRegistrado        = errors.New("El email proporcionado ya está registrado")
	ErrDniRegistrado          = errors.New("El DNI proporcionado ya está registrado")
	ErrTelefonoRegistrado     = errors.New("El teléfono proporcionado ya está registrado")
	ErrEmailRegistradoOtro    = errors.New("El email ya está registrado por otro usuario")
	ErrTelefonoRegistradoOtro = errors.New("El teléfono ya está registrado")
)

// Update errors
var (
	ErrSinCambios = errors.New("No se proporcionaron datos para modificar")
)

// Configuration errors
var (
	ErrRolNoConfigurado = errors.New("ROLE_PACIENTE no definido")
)

// IsValidationError reports whether err belongs to the domain validation
// taxonomy that callers receive as a 400 with the uniform error shape.
func IsValidationError(err error) bool {
	for _, e := range []error{
		ErrPacienteNoEncontrado,
		ErrPsicologoNoEncontrado,
		ErrEspecialidadNoEncontrada,
		ErrCitaNoEncontrada,
		ErrDniInvalido,
		ErrTelefonoInvalido,
		ErrEmailInvalido,
		ErrFechaNacimientoInvalida,
		ErrMenorDeEdad,
		ErrPrecioInvalido,
		ErrEmailRegistrado,
		ErrDniRegistrado,
		ErrTelefonoRegistrado,
		ErrEmailRegistradoOtro,
		ErrTelefonoRegistradoOtro,
		ErrSinCambios,
		ErrRolNoConfigurado,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
