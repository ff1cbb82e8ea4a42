package enrollmentController

import (
	"academy/config"
	"academy/database"
	"academy/enrollment"
	"academy/middleware"
	"academy/models"
	"academy/utils"
	enrollmentValidator "academy/validators/enrollment"
	"encoding/json"
	"log"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

// UploadDocument stores one supporting file for the authenticated
// student and returns its serving URL. One file per call; the wizard
// uploads its staged files sequentially.
func UploadDocument(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	kind, ok := c.Locals("documentKind").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid document kind!", nil)
	}

	file, err := c.FormFile("document")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "A document file is required!", nil)
	}

	destDir := filepath.Join(config.AppConfig.UploadDir, "enrollment")
	savedPath, err := utils.SaveUploadedFile(file, destDir)
	if err != nil {
		log.Printf("Error saving uploaded document: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save document!", nil)
	}

	doc := models.EnrollmentDocument{
		UserID:   userID,
		Kind:     kind,
		FileName: file.Filename,
		FilePath: savedPath,
		FileURL:  utils.GetFileURL(savedPath),
	}
	if err := database.Database.Db.Create(&doc).Error; err != nil {
		log.Printf("Error saving document record: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save document!", nil)
	}

	response := map[string]interface{}{
		"documentId": doc.ID,
		"url":        doc.FileURL,
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Document uploaded successfully!", response)
}

// GetEnrollmentForm returns the student's submitted form, or null data
// when none exists yet. An absent form is not an error; the wizard
// just starts from empty defaults.
func GetEnrollmentForm(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var form models.EnrollmentForm
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).First(&form).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "No enrollment form found!", nil)
	}

	var rec enrollment.WireRecord
	if err := json.Unmarshal(form.FormData, &rec); err != nil {
		log.Printf("Error unpacking enrollment form %d: %v", form.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load enrollment form!", nil)
	}
	rec.Completed = form.Completed

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment form fetched successfully!", rec)
}

// SubmitEnrollmentForm creates the student's enrollment record from a
// validated wire request.
func SubmitEnrollmentForm(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	rec, ok := c.Locals("validatedEnrollmentForm").(*enrollment.WireRecord)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	// A completed form can only be updated, not re-created
	var existing models.EnrollmentForm
	if err := db.Where("user_id = ? AND is_deleted = ?", userID, false).First(&existing).Error; err == nil && existing.Completed {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Enrollment form already submitted. Use update instead!", nil)
	}

	form, err := buildFormRow(userID, rec)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit form!", nil)
	}

	tx := db.Begin()
	if err := tx.Create(form).Error; err != nil {
		tx.Rollback()
		log.Printf("Error saving enrollment form: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit form!", nil)
	}
	tx.Commit()

	go func(email, name string) {
		if err := utils.SendEnrollmentFormEmail(email, name); err != nil {
			log.Printf("Error sending enrollment confirmation: %v", err)
		}
	}(user.Email, user.Name)

	response := map[string]interface{}{
		"enrollmentId": form.ID,
		"userId":       userID,
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment form submitted successfully!", response)
}

// UpdateEnrollmentForm replaces a previously submitted record.
func UpdateEnrollmentForm(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	rec, ok := c.Locals("validatedEnrollmentForm").(*enrollment.WireRecord)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var existing models.EnrollmentForm
	if err := db.Where("user_id = ? AND is_deleted = ?", userID, false).First(&existing).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No enrollment form to update!", nil)
	}

	form, err := buildFormRow(userID, rec)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update form!", nil)
	}

	updates := map[string]interface{}{
		"surname":    form.Surname,
		"given_name": form.GivenName,
		"email":      form.Email,
		"completed":  true,
		"form_data":  form.FormData,
	}
	if err := db.Model(&existing).Updates(updates).Error; err != nil {
		log.Printf("Error updating enrollment form %d: %v", existing.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update form!", nil)
	}

	response := map[string]interface{}{
		"enrollmentId": existing.ID,
		"userId":       userID,
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment form updated successfully!", response)
}

// PublicEnrollmentForm provisions a new student account and stores the
// enrollment form in one transaction, so account creation and
// submission are atomic for the public flow.
func PublicEnrollmentForm(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPublicEnrollment").(*enrollmentValidator.PublicEnrollmentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	fullName := reqData.GivenName + " " + reqData.Surname

	newUser := models.User{
		Name:     fullName,
		Email:    reqData.Email,
		Mobile:   reqData.Mobile,
		Role:     models.RoleStudent,
		Password: string(hashedPassword),
	}

	tx := db.Begin()
	if err := tx.Create(&newUser).Error; err != nil {
		tx.Rollback()
		log.Printf("Error creating user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit form!", nil)
	}

	form, err := buildFormRow(newUser.ID, &reqData.WireRecord)
	if err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit form!", nil)
	}
	if err := tx.Create(form).Error; err != nil {
		tx.Rollback()
		log.Printf("Error saving enrollment form: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit form!", nil)
	}
	tx.Commit()

	go func(email, name string) {
		if err := utils.SendAccountCreatedEmail(email, name); err != nil {
			log.Printf("Error sending welcome email: %v", err)
		}
	}(newUser.Email, newUser.Name)

	response := map[string]interface{}{
		"userId":    newUser.ID,
		"studentId": form.ID,
		"email":     newUser.Email,
		"fullName":  newUser.Name,
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment submitted successfully!", response)
}

// AdminListEnrollmentForms lists submitted forms with pagination.
func AdminListEnrollmentForms(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedFormList").(*struct {
		Page  *int `query:"page"`
		Limit *int `query:"limit"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
	}

	page := *reqData.Page
	limit := *reqData.Limit
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.EnrollmentForm{}).Where("is_deleted = ?", false)

	var total int64
	db.Count(&total)

	var forms []models.EnrollmentForm
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&forms).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollment forms!", nil)
	}

	response := map[string]interface{}{
		"forms": forms,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment forms fetched successfully!", response)
}

// buildFormRow packs a validated wire record into the storage row.
func buildFormRow(userID uint, rec *enrollment.WireRecord) (*models.EnrollmentForm, error) {
	rec.Completed = true
	raw, err := json.Marshal(rec)
	if err != nil {
		log.Printf("Error packing enrollment form: %v", err)
		return nil, err
	}
	return &models.EnrollmentForm{
		UserID:    userID,
		Surname:   rec.Surname,
		GivenName: rec.GivenName,
		Email:     rec.Email,
		Completed: true,
		FormData:  datatypes.JSON(raw),
	}, nil
}
