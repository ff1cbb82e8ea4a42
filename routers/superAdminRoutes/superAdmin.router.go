package superAdminRoutes

import (
	superAdminControllers "academy/controllers/superAdmin"
	"academy/middleware"
	"academy/models"

	"github.com/gofiber/fiber/v2"
)

func SetupSuperAdminRoutes(app *fiber.App) {
	superAdminGroup := app.Group("/super-admin", middleware.JWTMiddleware, middleware.RequireRole(models.RoleSuperAdmin))

	superAdminGroup.Get("/users", superAdminControllers.ListUsers)
	superAdminGroup.Put("/user/role", superAdminControllers.UpdateUserRole)
	superAdminGroup.Put("/user/block", superAdminControllers.BlockUser)
}
