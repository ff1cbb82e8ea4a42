// Package client is the HTTP implementation of the enrollment wizard's
// external collaborators, talking to the academy REST API.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"academy/enrollment"

	"github.com/go-resty/resty/v2"
)

type Client struct {
	http *resty.Client
}

var (
	_ enrollment.DocumentUploader    = (*Client)(nil)
	_ enrollment.EnrollmentAPI       = (*Client)(nil)
	_ enrollment.PublicEnrollmentAPI = (*Client)(nil)
)

func New(baseURL string) *Client {
	return &Client{http: resty.New().SetBaseURL(baseURL)}
}

// SetToken installs the bearer token of the authenticated session.
func (c *Client) SetToken(token string) {
	c.http.SetAuthToken(token)
}

// envelope is the API's uniform response shape.
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Upload sends one staged file and returns the stored document URL.
func (c *Client) Upload(file enrollment.StagedFile, subjectID uint) (string, error) {
	var env envelope
	resp, err := c.http.R().
		SetFileReader("document", file.Name, bytes.NewReader(file.Content)).
		SetFormData(map[string]string{
			"kind":      file.Field,
			"subjectId": strconv.FormatUint(uint64(subjectID), 10),
		}).
		SetResult(&env).
		Post("/enrollment/document/upload")
	if err != nil {
		return "", err
	}
	if resp.IsError() || !env.Status {
		return "", apiError(env.Message, "Failed to upload document!")
	}

	var data struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return "", err
	}
	return data.URL, nil
}

// GetByStudentID fetches the student's existing enrollment record.
// Absent records come back as (nil, nil).
func (c *Client) GetByStudentID(studentID uint) (*enrollment.WireRecord, error) {
	var env envelope
	resp, err := c.http.R().
		SetResult(&env).
		Get("/enrollment/form")
	if err != nil {
		return nil, err
	}
	if resp.IsError() || !env.Status {
		return nil, apiError(env.Message, "Failed to load enrollment form!")
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, nil
	}

	rec := new(enrollment.WireRecord)
	if err := json.Unmarshal(env.Data, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Submit creates the enrollment record.
func (c *Client) Submit(rec *enrollment.WireRecord, studentID uint) (*enrollment.SubmitResult, error) {
	return c.send(resty.MethodPost, "/enrollment/form", rec)
}

// Update replaces a previously submitted record.
func (c *Client) Update(rec *enrollment.WireRecord, studentID uint) (*enrollment.SubmitResult, error) {
	return c.send(resty.MethodPut, "/enrollment/form", rec)
}

func (c *Client) send(method, path string, rec *enrollment.WireRecord) (*enrollment.SubmitResult, error) {
	var env envelope
	resp, err := c.http.R().
		SetBody(rec).
		SetResult(&env).
		Execute(method, path)
	if err != nil {
		return nil, err
	}

	result := &enrollment.SubmitResult{
		Success: env.Status && !resp.IsError(),
		Message: env.Message,
	}
	if len(env.Data) > 0 {
		var data struct {
			EnrollmentID uint `json:"enrollmentId"`
			UserID       uint `json:"userId"`
		}
		if err := json.Unmarshal(env.Data, &data); err == nil {
			result.EnrollmentID = data.EnrollmentID
			result.UserID = data.UserID
		}
	}
	return result, nil
}

// SubmitPublic posts the public variant: the wire record plus the
// password for the account being provisioned alongside it.
func (c *Client) SubmitPublic(rec *enrollment.WireRecord, password string) (*enrollment.PublicSubmitResult, error) {
	body := struct {
		*enrollment.WireRecord
		Password string `json:"password"`
	}{WireRecord: rec, Password: password}

	var env envelope
	resp, err := c.http.R().
		SetBody(body).
		SetResult(&env).
		Post("/enrollment/public")
	if err != nil {
		return nil, err
	}

	result := &enrollment.PublicSubmitResult{
		Success: env.Status && !resp.IsError(),
		Message: env.Message,
	}
	if len(env.Data) > 0 {
		var data struct {
			UserID    uint   `json:"userId"`
			StudentID uint   `json:"studentId"`
			Email     string `json:"email"`
			FullName  string `json:"fullName"`
		}
		if err := json.Unmarshal(env.Data, &data); err == nil {
			result.UserID = data.UserID
			result.StudentID = data.StudentID
			result.Email = data.Email
			result.FullName = data.FullName
		}
	}
	return result, nil
}

func apiError(message, fallback string) error {
	if message == "" {
		message = fallback
	}
	return fmt.Errorf("%s", message)
}
