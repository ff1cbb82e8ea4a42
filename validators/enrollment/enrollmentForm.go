package enrollmentValidator

import (
	"academy/enrollment"
	"academy/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SubmitEnrollmentForm parses the flattened wire request and runs the
// five section validators against it at the given strictness. The
// validated record lands in Locals for the controller.
func SubmitEnrollmentForm(variant enrollment.Variant) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rec := new(enrollment.WireRecord)
		if err := c.BodyParser(rec); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		form := enrollment.NewForm()
		form.LoadWire(rec)

		if all := enrollment.ValidateAll(form, variant); len(all) > 0 {
			return middleware.ValidationErrorResponse(c, enrollment.FlattenErrors(all))
		}

		c.Locals("validatedEnrollmentForm", rec)
		return c.Next()
	}
}

// PublicEnrollmentRequest is the public variant's body: the wire
// record plus the password for the account being provisioned.
type PublicEnrollmentRequest struct {
	enrollment.WireRecord
	Password string `json:"password"`
}

// PublicEnrollmentForm validates the public variant.
func PublicEnrollmentForm() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(PublicEnrollmentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		form := enrollment.NewForm()
		form.LoadWire(&reqData.WireRecord)

		errors := enrollment.FlattenErrors(enrollment.ValidateAll(form, enrollment.VariantPublic))

		// Validate Password
		if len(strings.TrimSpace(reqData.Password)) < 8 {
			errors["password"] = "Password must be at least 8 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPublicEnrollment", reqData)
		return c.Next()
	}
}

// UploadDocument checks the multipart upload and its document slot.
func UploadDocument() fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)

		kind := strings.TrimSpace(c.FormValue("kind"))
		valid := false
		for _, k := range enrollment.DocumentKinds {
			if k == kind {
				valid = true
				break
			}
		}
		if !valid {
			errors["kind"] = "Invalid document kind!"
		}

		if _, err := c.FormFile("document"); err != nil {
			errors["document"] = "A document file is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("documentKind", kind)
		return c.Next()
	}
}

// ListEnrollmentForms validates admin list pagination.
func ListEnrollmentForms() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `query:"page"`
			Limit *int `query:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		// Validate Page
		if reqData.Page == nil || *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}

		// Validate Limit
		if reqData.Limit == nil || *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedFormList", reqData)
		return c.Next()
	}
}
