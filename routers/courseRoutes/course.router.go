package courseRoutes

import (
	courseControllers "academy/controllers/course"
	"academy/middleware"
	"academy/models"
	courseValidators "academy/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Student portal
	courseGroup.Get("/list", courseValidators.ListCourses(), courseControllers.ListCourses)
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, courseValidators.CourseID(), courseControllers.EnrollInCourse)
	courseGroup.Get("/enrollments", middleware.JWTMiddleware, courseControllers.GetEnrollments)

	// Admin portal
	adminGroup := courseGroup.Group("/admin", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTeacher, models.RoleAdmin, models.RoleSuperAdmin))
	adminGroup.Post("/create", courseValidators.CreateCourse(), courseControllers.AdminCreateCourse)
	adminGroup.Put("/:id", courseValidators.CourseID(), courseValidators.CreateCourse(), courseControllers.AdminUpdateCourse)
	adminGroup.Post("/:id/publish", courseValidators.CourseID(), courseControllers.AdminPublishCourse)
	adminGroup.Delete("/:id", courseValidators.CourseID(), courseControllers.AdminDeleteCourse)
}
