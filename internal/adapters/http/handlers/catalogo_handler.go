package handlers

import (
	"psiconnect-backend/internal/adapters/persistence/repositories"
	"psiconnect-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CatalogoHandler serves the read-only reference catalogs used to book
// appointments: specialties and psychologists.
type CatalogoHandler struct {
	especialidadRepo repositories.EspecialidadRepository
	psicologoRepo    repositories.PsicologoRepository
}

// NewCatalogoHandler creates a new catalog handler
func NewCatalogoHandler(
	especialidadRepo repositories.EspecialidadRepository,
	psicologoRepo repositories.PsicologoRepository,
) *CatalogoHandler {
	return &CatalogoHandler{
		especialidadRepo: especialidadRepo,
		psicologoRepo:    psicologoRepo,
	}
}

// ListarEspecialidades lists active specialties
// @Summary List active specialties
// @Tags Catalogo
// @Produce json
// @Success 200 {object} response.Response
// @Router /especialidad/listar [get]
func (h *CatalogoHandler) ListarEspecialidades(c *fiber.Ctx) error {
	especialidades, err := h.especialidadRepo.ListActivas(c.Context())
	if err != nil {
		return response.InternalServerError(c, "No se pudieron listar las especialidades")
	}

	return response.Success(c, "Especialidades activas", especialidades)
}

// ListarPsicologos lists active psychologists
// @Summary List active psychologists
// @Tags Catalogo
// @Produce json
// @Success 200 {object} response.Response
// @Router /psicologo/listar [get]
func (h *CatalogoHandler) ListarPsicologos(c *fiber.Ctx) error {
	psicologos, err := h.psicologoRepo.ListActivos(c.Context())
	if err != nil {
		return response.InternalServerError(c, "No se pudieron listar los psicólogos")
	}

	return response.Success(c, "Psicólogos activos", psicologos)
}
