package routes

import (
	"psiconnect-backend/internal/adapters/http/handlers"
	"psiconnect-backend/internal/adapters/http/middleware"
	"psiconnect-backend/internal/adapters/persistence/models"
	"psiconnect-backend/internal/adapters/persistence/repositories"
	"psiconnect-backend/internal/config"
	"psiconnect-backend/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	usuarioRepo := repositories.NewUsuarioRepository(db)
	rolRepo := repositories.NewRolRepository(db)
	pacienteRepo := repositories.NewPacienteRepository(db)
	psicologoRepo := repositories.NewPsicologoRepository(db)
	especialidadRepo := repositories.NewEspecialidadRepository(db)
	citaRepo := repositories.NewCitaRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)

	// Initialize services
	authService := services.NewAuthService(usuarioRepo, refreshTokenRepo, cfg)
	pacienteService := services.NewPacienteService(pacienteRepo, usuarioRepo, rolRepo)
	citaService := services.NewCitaService(citaRepo, pacienteRepo, psicologoRepo, especialidadRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	pacienteHandler := handlers.NewPacienteHandler(pacienteService)
	citaHandler := handlers.NewCitaHandler(citaService)
	catalogoHandler := handlers.NewCatalogoHandler(especialidadRepo, psicologoRepo)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	api := app.Group("/api")

	// Auth routes (stricter rate limit)
	auth := api.Group("/auth", middleware.AuthRateLimiter())
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.RefreshToken)
	auth.Post("/logout", authHandler.Logout)

	requireAuth := middleware.AuthMiddleware(cfg)
	anyRole := middleware.RoleMiddleware(models.RolPaciente, models.RolPsicologo, models.RolAdmin)
	staffOnly := middleware.RoleMiddleware(models.RolPsicologo, models.RolAdmin)

	// Usuario routes
	usuarios := api.Group("/usuarios", requireAuth)
	usuarios.Get("/me", authHandler.Me)

	// Paciente routes; registration is public (it creates the credentials)
	paciente := api.Group("/paciente")
	paciente.Post("/registrar", pacienteHandler.Registrar)
	paciente.Patch("/modificar/:dni", requireAuth, anyRole, pacienteHandler.Modificar)
	paciente.Get("/dni/:dni", requireAuth, anyRole, pacienteHandler.ListarPorDni)
	paciente.Get("/activos", requireAuth, staffOnly, pacienteHandler.ListarActivos)
	paciente.Get("/listar", requireAuth, staffOnly, pacienteHandler.ListarTodos)

	// Cita routes
	cita := api.Group("/cita", requireAuth, anyRole)
	cita.Post("/registrar", citaHandler.Registrar)
	cita.Get("/especialidad/:nombre", citaHandler.ListarPorEspecialidad)
	cita.Get("/psicologo/:nombre", citaHandler.ListarPorPsicologo)
	cita.Get("/paciente/:nombre", citaHandler.ListarPorPaciente)
	cita.Get("/codigo/:codigo", citaHandler.BuscarPorCodigo)

	// Public reference catalogs
	api.Get("/especialidad/listar", catalogoHandler.ListarEspecialidades)
	api.Get("/psicologo/listar", catalogoHandler.ListarPsicologos)
}
