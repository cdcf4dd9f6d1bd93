package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-api/internal/application/auth"
	"github.com/tu-usuario/ventas-api/internal/application/usecase"
	"github.com/tu-usuario/ventas-api/internal/application/ventas"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/ventas-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CategoryUC  *usecase.CategoryUseCase
	ProductUC   *usecase.ProductUseCase
	RoleUC      *usecase.RoleUseCase
	CreateVenta *ventas.CreateVentaUseCase
	VentaQuery  *ventas.VentaQueries
	ReceiptGen  *pdf.ReceiptGenerator
	JWTConfig   jwt.Config
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTConfig))

	// Users (perfil para cualquier autenticado; listado solo Admin)
	users := protected.Group("/users")
	users.Get("/profile", authHandler.Profile)
	users.Get("/", RequireRole(entity.RoleAdmin), authHandler.ListUsers)

	// Roles (solo Admin)
	roles := protected.Group("/roles", RequireRole(entity.RoleAdmin))
	roleHandler := NewRoleHandler(deps.RoleUC)
	roles.Get("/", roleHandler.List)
	roles.Post("/", roleHandler.Create)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	// Ventas (protegido)
	ventasGroup := protected.Group("/ventas")
	ventaHandler := NewVentaHandler(deps.CreateVenta, deps.VentaQuery, deps.ReceiptGen)
	ventasGroup.Post("/", ventaHandler.Create)
	ventasGroup.Get("/", ventaHandler.List)
	ventasGroup.Get("/:id", ventaHandler.GetByID)
	ventasGroup.Get("/:id/pdf", ventaHandler.Receipt)
}
