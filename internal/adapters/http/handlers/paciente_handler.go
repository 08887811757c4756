package handlers

import (
	"errors"

	"psiconnect-backend/internal/core/domain"
	"psiconnect-backend/internal/core/services"
	"psiconnect-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PacienteHandler handles patient endpoints
type PacienteHandler struct {
	pacienteService *services.PacienteService
}

// NewPacienteHandler creates a new patient handler
func NewPacienteHandler(pacienteService *services.PacienteService) *PacienteHandler {
	return &PacienteHandler{
		pacienteService: pacienteService,
	}
}

// Registrar handles patient registration
// @Summary Register patient
// @Description Register a new patient and its login identity
// @Tags Pacientes
// @Accept json
// @Produce json
// @Param body body services.RegistrarPacienteInput true "Patient data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ValidationResponse
// @Router /paciente/registrar [post]
func (h *PacienteHandler) Registrar(c *fiber.Ctx) error {
	var req services.RegistrarPacienteInput
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Cuerpo de la solicitud inválido")
	}

	paciente, err := h.pacienteService.Registrar(c.Context(), &req)
	if err != nil {
		if domain.IsValidationError(err) {
			return response.ValidationError(c, err.Error())
		}
		return response.InternalServerError(c, "No se pudo registrar el paciente")
	}

	return response.Success(c, "Paciente registrado correctamente", paciente)
}

// Modificar handles partial patient update
// @Summary Update patient
// @Description Partially update the patient identified by DNI; absent fields stay untouched
// @Tags Pacientes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param dni path string true "Patient DNI"
// @Param body body services.ModificarPacienteInput true "Fields to change"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ValidationResponse
// @Router /paciente/modificar/{dni} [patch]
func (h *PacienteHandler) Modificar(c *fiber.Ctx) error {
	dni := c.Params("dni")

	var req services.ModificarPacienteInput
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Cuerpo de la solicitud inválido")
	}

	paciente, err := h.pacienteService.Modificar(c.Context(), dni, &req)
	if err != nil {
		if domain.IsValidationError(err) {
			return response.ValidationError(c, err.Error())
		}
		return response.InternalServerError(c, "No se pudo modificar el paciente")
	}

	return response.Success(c, "Paciente modificado correctamente", paciente)
}

// ListarPorDni finds a patient by DNI
// @Summary Get patient by DNI
// @Tags Pacientes
// @Produce json
// @Security BearerAuth
// @Param dni path string true "Patient DNI"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /paciente/dni/{dni} [get]
func (h *PacienteHandler) ListarPorDni(c *fiber.Ctx) error {
	dni := c.Params("dni")

	paciente, err := h.pacienteService.ListarPorDni(c.Context(), dni)
	if err != nil {
		if errors.Is(err, domain.ErrPacienteNoEncontrado) {
			return response.NotFound(c, err.Error())
		}
		return response.InternalServerError(c, "No se pudo buscar el paciente")
	}

	return response.Success(c, "Paciente encontrado", paciente)
}

// ListarActivos lists active patients
// @Summary List active patients
// @Tags Pacientes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /paciente/activos [get]
func (h *PacienteHandler) ListarActivos(c *fiber.Ctx) error {
	pacientes, err := h.pacienteService.ListarActivos(c.Context())
	if err != nil {
		return response.InternalServerError(c, "No se pudieron listar los pacientes")
	}

	return response.Success(c, "Pacientes activos", pacientes)
}

// ListarTodos lists every patient
// @Summary List all patients
// @Tags Pacientes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /paciente/listar [get]
func (h *PacienteHandler) ListarTodos(c *fiber.Ctx) error {
	pacientes, err := h.pacienteService.ListarTodos(c.Context())
	if err != nil {
		return response.InternalServerError(c, "No se pudieron listar los pacientes")
	}

	return response.Success(c, "Pacientes registrados", pacientes)
}
