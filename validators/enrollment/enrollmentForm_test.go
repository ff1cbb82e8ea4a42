package enrollmentValidator

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"academy/enrollment"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  bool              `json:"status"`
	Message string            `json:"message"`
	Data    map[string]string `json:"data"`
}

func passHandler(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusOK)
}

func validWirePayload() map[string]interface{} {
	rec := enrollment.WireRecord{
		ApplicantDetails: enrollment.ApplicantDetails{
			Title:                  "Mr",
			Surname:                "Carter",
			GivenName:              "James",
			DOB:                    "1995-08-03",
			Gender:                 "Male",
			Mobile:                 "0411222333",
			Email:                  "james.carter@example.com",
			ResAddress:             "4 Crown Ln",
			ResSuburb:              "Fairy Meadow",
			ResState:               "NSW",
			ResPostcode:            "2519",
			EmergencyName:          "Anne Carter",
			EmergencyRelationship:  "Mother",
			EmergencyContactNumber: "0411999888",
			EmergencyPermission:    enrollment.Yes,
		},
		USIDetails: enrollment.USIDetails{
			USI:           "XYZ9876543",
			USIPermission: true,
			USIApply:      enrollment.No,
		},
		EducationDetails: enrollment.EducationDetails{
			SchoolLevel:      "Year 12 or equivalent",
			SchoolYear:       "2013",
			SchoolName:       "Fairy Meadow High",
			SchoolInAus:      true,
			SchoolState:      "NSW",
			SchoolPostcode:   "2519",
			HasPostQual:      enrollment.No,
			EmploymentStatus: "Full-time employee",
			TrainingReason:   "To get a job",
		},
		AdditionalInfo: enrollment.AdditionalInfo{
			BirthCountry:     "Australia",
			LangOther:        enrollment.No,
			IndigenousStatus: "No",
			HasDisability:    enrollment.No,
		},
		PrivacyTerms: enrollment.PrivacyTerms{
			PrivacyAccepted: true,
			TermsAccepted:   true,
			DeclName:        "James Carter",
			DeclDate:        "2025-03-01",
			SignatureData:   "data:image/png;base64,iVBORw0KGgo=",
		},
	}

	raw, _ := json.Marshal(rec)
	var flat map[string]interface{}
	_ = json.Unmarshal(raw, &flat)
	return flat
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (*http.Response, envelope) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(payload) > 0 && payload[0] == '{' {
		require.NoError(t, json.Unmarshal(payload, &env))
	}
	return resp, env
}

func TestSubmitEnrollmentFormValidator(t *testing.T) {
	app := fiber.New()
	app.Post("/enrollment/form", SubmitEnrollmentForm(enrollment.VariantStudent), passHandler)

	tests := []struct {
		name       string
		mutate     func(map[string]interface{})
		wantStatus int
		wantField  string
	}{
		{
			name:       "valid record passes through",
			mutate:     func(m map[string]interface{}) {},
			wantStatus: fiber.StatusOK,
		},
		{
			name:       "missing surname",
			mutate:     func(m map[string]interface{}) { delete(m, "surname") },
			wantStatus: fiber.StatusUnprocessableEntity,
			wantField:  "surname",
		},
		{
			name:       "bad email format",
			mutate:     func(m map[string]interface{}) { m["email"] = "not-an-email" },
			wantStatus: fiber.StatusUnprocessableEntity,
			wantField:  "email",
		},
		{
			name: "open postal gate without postal fields",
			mutate: func(m map[string]interface{}) {
				m["postalDifferent"] = true
			},
			wantStatus: fiber.StatusUnprocessableEntity,
			wantField:  "postAddress",
		},
		{
			name: "usi application missing document sub-fields",
			mutate: func(m map[string]interface{}) {
				m["usiApply"] = enrollment.Yes
				m["authName"] = "James Carter"
				m["authConsent"] = true
				m["townOfBirth"] = "Sydney"
				m["overseasCity"] = "Sydney"
				m["usiIdType"] = enrollment.USIDocMedicare
			},
			wantStatus: fiber.StatusUnprocessableEntity,
			wantField:  "medicareNumber",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := validWirePayload()
			tt.mutate(body)

			resp, env := postJSON(t, app, "/enrollment/form", body)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantField != "" {
				assert.Equal(t, "Validation failed!", env.Message)
				assert.Contains(t, env.Data, tt.wantField)
			}
		})
	}
}

func TestPublicEnrollmentFormPasswordRule(t *testing.T) {
	app := fiber.New()
	app.Post("/enrollment/public", PublicEnrollmentForm(), passHandler)

	body := validWirePayload()
	body["password"] = "short"

	resp, env := postJSON(t, app, "/enrollment/public", body)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, env.Data, "password")

	body["password"] = "longenoughpassword"
	resp, _ = postJSON(t, app, "/enrollment/public", body)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestUploadDocumentValidator(t *testing.T) {
	app := fiber.New()
	app.Post("/enrollment/document/upload", UploadDocument(), passHandler)

	build := func(kind string, withFile bool) *http.Request {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		require.NoError(t, w.WriteField("kind", kind))
		if withFile {
			part, err := w.CreateFormFile("document", "passport.pdf")
			require.NoError(t, err)
			_, err = part.Write([]byte("pdf"))
			require.NoError(t, err)
		}
		require.NoError(t, w.Close())

		req := httptest.NewRequest(fiber.MethodPost, "/enrollment/document/upload", &buf)
		req.Header.Set("Content-Type", w.FormDataContentType())
		return req
	}

	resp, err := app.Test(build("idDoc1", true), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(build("somethingElse", true), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp, err = app.Test(build("usiFile", false), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestListEnrollmentFormsPagination(t *testing.T) {
	app := fiber.New()
	app.Get("/enrollment/admin/forms", ListEnrollmentForms(), passHandler)

	get := func(query string) int {
		req := httptest.NewRequest(fiber.MethodGet, "/enrollment/admin/forms"+query, nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, fiber.StatusOK, get("?page=1&limit=20"))
	assert.Equal(t, fiber.StatusUnprocessableEntity, get(""))
	assert.Equal(t, fiber.StatusUnprocessableEntity, get("?page=0&limit=20"))
	assert.Equal(t, fiber.StatusUnprocessableEntity, get("?page=1&limit=0"))
}
