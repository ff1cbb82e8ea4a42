package superAdminController

import (
	"academy/database"
	"academy/middleware"
	"academy/models"

	"github.com/gofiber/fiber/v2"
)

// ListUsers lists all non-deleted users for the super-admin portal.
func ListUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("created_at desc").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	// Never leak password hashes
	for i := range users {
		users[i].Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", users)
}

// UpdateUserRole promotes/demotes a user between the portal roles.
func UpdateUserRole(c *fiber.Ctx) error {
	reqData := new(struct {
		UserID uint   `json:"userId"`
		Role   string `json:"role"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	validRole := false
	for _, role := range []string{models.RoleStudent, models.RoleTeacher, models.RoleAdmin, models.RoleSuperAdmin} {
		if reqData.Role == role {
			validRole = true
			break
		}
	}
	if !validRole {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid role!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.UserID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if err := database.Database.Db.Model(&user).Update("role", reqData.Role).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update role!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User role updated successfully!", nil)
}

// BlockUser toggles the blocked flag on a user account.
func BlockUser(c *fiber.Ctx) error {
	reqData := new(struct {
		UserID  uint `json:"userId"`
		Blocked bool `json:"blocked"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.UserID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if err := database.Database.Db.Model(&user).Update("is_blocked", reqData.Blocked).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user!", nil)
	}

	message := "User unblocked successfully!"
	if reqData.Blocked {
		message = "User blocked successfully!"
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, nil)
}
