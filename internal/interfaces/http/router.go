package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mfigueroa/inventario-medico/internal/application/alerts"
	"github.com/mfigueroa/inventario-medico/internal/application/auth"
	"github.com/mfigueroa/inventario-medico/internal/application/export"
	"github.com/mfigueroa/inventario-medico/internal/application/medication"
	"github.com/mfigueroa/inventario-medico/internal/application/movement"
	"github.com/mfigueroa/inventario-medico/internal/application/stock"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PrincipalUC  *stock.UseCase
	SecundarioUC *stock.UseCase
	MedicationUC *medication.UseCase
	MovementUC   *movement.UseCase
	History      *movement.History
	AlertsUC     *alerts.UseCase
	ExportPpal   *export.UseCase
	ExportSec    *export.UseCase
	AuthUC       *auth.UseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (register y login públicos)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/me", authHandler.Me)

	// Almacén principal (protegido). El transfer va antes de /:id para que
	// Fiber no lo capture como parámetro.
	movementHandler := NewMovementHandler(deps.MovementUC, deps.History)
	principal := protected.Group("/storage-principal")
	principalHandler := NewStockHandler(deps.PrincipalUC)
	principal.Post("/transfer", movementHandler.Transfer)
	principal.Get("/", principalHandler.List)
	principal.Post("/", principalHandler.Add)
	principal.Put("/:id", principalHandler.Update)
	principal.Delete("/:id", principalHandler.Delete)

	// Almacén secundario (protegido). Sin POST: el secundario solo recibe
	// stock vía transferencias.
	secundario := protected.Group("/storage-secundario")
	secundarioHandler := NewStockHandler(deps.SecundarioUC)
	secundario.Get("/", secundarioHandler.List)
	secundario.Put("/:id", secundarioHandler.Update)
	secundario.Delete("/:id", secundarioHandler.Delete)

	// Medicamentos (protegido)
	medicamentos := protected.Group("/medicamentos")
	medicationHandler := NewMedicationHandler(deps.MedicationUC)
	medicamentos.Get("/", medicationHandler.List)
	medicamentos.Post("/", medicationHandler.Create)
	medicamentos.Put("/:id", medicationHandler.Update)
	medicamentos.Delete("/:id", medicationHandler.Delete)

	// Bitácoras de movimientos (protegido)
	protected.Get("/transferencias", movementHandler.ListTransfers)
	retiros := protected.Group("/retiros_medicamentos")
	retiros.Post("/", movementHandler.Withdraw)
	retiros.Get("/", movementHandler.ListWithdrawals)

	// Alertas (protegido)
	alertHandler := NewAlertHandler(deps.AlertsUC)
	protected.Get("/alertas", alertHandler.List)

	// Export CSV (protegido)
	exportGroup := protected.Group("/export")
	exportGroup.Get("/principal", NewExportHandler(deps.ExportPpal, "storage_principal").CSV)
	exportGroup.Get("/secundario", NewExportHandler(deps.ExportSec, "storage_secundario").CSV)
}
