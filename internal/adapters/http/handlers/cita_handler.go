package handlers

import (
	"errors"
	"net/url"
	"strconv"

	"psiconnect-backend/internal/core/domain"
	"psiconnect-backend/internal/core/services"
	"psiconnect-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CitaHandler handles appointment endpoints
type CitaHandler struct {
	citaService *services.CitaService
}

// NewCitaHandler creates a new appointment handler
func NewCitaHandler(citaService *services.CitaService) *CitaHandler {
	return &CitaHandler{
		citaService: citaService,
	}
}

// Registrar handles appointment registration
// @Summary Register appointment
// @Description Register a new appointment linking a patient, a psychologist and a specialty
// @Tags Citas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.RegistrarCitaInput true "Appointment data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ValidationResponse
// @Router /cita/registrar [post]
func (h *CitaHandler) Registrar(c *fiber.Ctx) error {
	var req services.RegistrarCitaInput
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Cuerpo de la solicitud inválido")
	}

	cita, err := h.citaService.Registrar(c.Context(), &req)
	if err != nil {
		if domain.IsValidationError(err) {
			return response.ValidationError(c, err.Error())
		}
		return response.InternalServerError(c, "No se pudo registrar la cita")
	}

	return response.Success(c, "Cita registrada correctamente", cita)
}

// ListarPorEspecialidad lists pending appointments by specialty name
// @Summary List pending appointments by specialty
// @Tags Citas
// @Produce json
// @Security BearerAuth
// @Param nombre path string true "Specialty name"
// @Success 200 {object} response.Response
// @Router /cita/especialidad/{nombre} [get]
func (h *CitaHandler) ListarPorEspecialidad(c *fiber.Ctx) error {
	nombre, err := urlParam(c, "nombre")
	if err != nil {
		return response.BadRequest(c, "Nombre inválido")
	}

	citas, err := h.citaService.ListarPorEspecialidad(c.Context(), nombre)
	if err != nil {
		return response.InternalServerError(c, "No se pudieron listar las citas")
	}

	return response.Success(c, "Citas pendientes por especialidad", citas)
}

// ListarPorPsicologo lists pending appointments by psychologist name
// @Summary List pending appointments by psychologist
// @Tags Citas
// @Produce json
// @Security BearerAuth
// @Param nombre path string true "Psychologist name"
// @Success 200 {object} response.Response
// @Router /cita/psicologo/{nombre} [get]
func (h *CitaHandler) ListarPorPsicologo(c *fiber.Ctx) error {
	nombre, err := urlParam(c, "nombre")
	if err != nil {
		return response.BadRequest(c, "Nombre inválido")
	}

	citas, err := h.citaService.ListarPorPsicologo(c.Context(), nombre)
	if err != nil {
		return response.InternalServerError(c, "No se pudieron listar las citas")
	}

	return response.Success(c, "Citas pendientes por psicólogo", citas)
}

// ListarPorPaciente lists pending appointments by patient name
// @Summary List pending appointments by patient
// @Tags Citas
// @Produce json
// @Security BearerAuth
// @Param nombre path string true "Patient name"
// @Success 200 {object} response.Response
// @Router /cita/paciente/{nombre} [get]
func (h *CitaHandler) ListarPorPaciente(c *fiber.Ctx) error {
	nombre, err := urlParam(c, "nombre")
	if err != nil {
		return response.BadRequest(c, "Nombre inválido")
	}

	citas, err := h.citaService.ListarPorPaciente(c.Context(), nombre)
	if err != nil {
		return response.InternalServerError(c, "No se pudieron listar las citas")
	}

	return response.Success(c, "Citas pendientes por paciente", citas)
}

// BuscarPorCodigo finds an appointment by its business code
// @Summary Find appointment by code
// @Tags Citas
// @Produce json
// @Security BearerAuth
// @Param codigo path int true "Appointment code"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /cita/codigo/{codigo} [get]
func (h *CitaHandler) BuscarPorCodigo(c *fiber.Ctx) error {
	codigo, err := strconv.ParseUint(c.Params("codigo"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "Código inválido")
	}

	cita, err := h.citaService.BuscarPorCodigo(c.Context(), codigo)
	if err != nil {
		if errors.Is(err, domain.ErrCitaNoEncontrada) {
			return response.NotFound(c, err.Error())
		}
		return response.InternalServerError(c, "No se pudo buscar la cita")
	}

	return response.Success(c, "Cita encontrada", cita)
}

// urlParam returns a path parameter with percent-encoding undone, so names
// with spaces ("Terapia de Pareja") match their stored form.
func urlParam(c *fiber.Ctx, key string) (string, error) {
	return url.PathUnescape(c.Params(key))
}
