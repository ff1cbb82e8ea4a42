package enrollmentRoutes

import (
	enrollmentControllers "academy/controllers/enrollmentControllers"
	"academy/enrollment"
	"academy/middleware"
	"academy/models"
	enrollmentValidators "academy/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

func SetupEnrollmentRoutes(app *fiber.App) {
	enrollmentGroup := app.Group("/enrollment")

	// Public flow: account provisioning plus form submission in one call
	enrollmentGroup.Post("/public", enrollmentValidators.PublicEnrollmentForm(), enrollmentControllers.PublicEnrollmentForm)

	// Authenticated student flow
	enrollmentGroup.Post("/document/upload", middleware.JWTMiddleware, enrollmentValidators.UploadDocument(), enrollmentControllers.UploadDocument)
	enrollmentGroup.Get("/form", middleware.JWTMiddleware, enrollmentControllers.GetEnrollmentForm)
	enrollmentGroup.Post("/form", middleware.JWTMiddleware, enrollmentValidators.SubmitEnrollmentForm(enrollment.VariantStudent), enrollmentControllers.SubmitEnrollmentForm)
	enrollmentGroup.Put("/form", middleware.JWTMiddleware, enrollmentValidators.SubmitEnrollmentForm(enrollment.VariantStudent), enrollmentControllers.UpdateEnrollmentForm)

	// Admin review
	adminGroup := enrollmentGroup.Group("/admin")
	adminGroup.Get("/list", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin, models.RoleSuperAdmin), enrollmentValidators.ListEnrollmentForms(), enrollmentControllers.AdminListEnrollmentForms)
}
