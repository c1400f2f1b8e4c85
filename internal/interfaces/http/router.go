package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/gestion-pro/internal/application/analytics"
	"github.com/tu-usuario/gestion-pro/internal/application/auth"
	"github.com/tu-usuario/gestion-pro/internal/application/expenses"
	"github.com/tu-usuario/gestion-pro/internal/application/inventory"
	"github.com/tu-usuario/gestion-pro/internal/application/sales"
	"github.com/tu-usuario/gestion-pro/internal/application/usecase"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ClubUC      *usecase.ClubUseCase
	ProductUC   *usecase.ProductUseCase
	ClientUC    *usecase.ClientUseCase
	EmployeeUC  *usecase.EmployeeUseCase
	AdjustStock *inventory.AdjustStockUseCase
	SaleUC      *sales.CreateSaleUseCase
	ExpenseUC   *expenses.ExpenseUseCase
	SummaryUC   *expenses.SummaryUseCase
	RecurringUC *expenses.RecurringUseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
	UploadDir   string
	UploadBase  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Clubs (público para alta inicial; consulta protegida no hace falta aún)
	clubs := api.Group("/clubs")
	clubHandler := NewClubHandler(deps.ClubUC)
	clubs.Post("/", clubHandler.Create)
	clubs.Get("/", clubHandler.List)
	clubs.Get("/:id", clubHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	managers := RequireRole(entity.RoleAdmin, entity.RoleManager)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", managers, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/stock", productHandler.GetStock)
	products.Put("/:id", managers, productHandler.Update)
	products.Delete("/:id", managers, productHandler.Delete)

	// Inventory movements (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.AdjustStock)
	invGroup.Post("/movements", managers, inventoryHandler.AdjustStock)
	invGroup.Get("/movements", inventoryHandler.ListByClub)
	invGroup.Get("/movements/:productId", inventoryHandler.ListByProduct)

	// Sales (protegido, cualquier rol autenticado vende)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)

	// Expenses (protegido)
	expensesGroup := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC, deps.SummaryUC, deps.RecurringUC, deps.UploadDir, deps.UploadBase)
	expensesGroup.Post("/", managers, expenseHandler.Create)
	expensesGroup.Get("/", expenseHandler.List)
	expensesGroup.Get("/summary", expenseHandler.Summary)
	expensesGroup.Post("/recurring", managers, expenseHandler.CreateRecurring)
	expensesGroup.Get("/recurring", expenseHandler.ListRecurring)
	expensesGroup.Delete("/recurring/:id", managers, expenseHandler.DeactivateRecurring)
	expensesGroup.Get("/:id", expenseHandler.GetByID)
	expensesGroup.Put("/:id", managers, expenseHandler.Update)
	expensesGroup.Delete("/:id", managers, expenseHandler.Delete)
	expensesGroup.Post("/:id/receipt", managers, expenseHandler.UploadReceipt)

	// Clients (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", managers, clientHandler.Delete)

	// Employees (protegido, solo admin y manager)
	employees := protected.Group("/employees", managers)
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.DashboardUC)
	reports.Get("/dashboard", reportHandler.Dashboard)
}
