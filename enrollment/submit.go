package enrollment

import "errors"

// ErrValidation is returned by Submit when one or more sections fail
// validation. The field errors live on the form; no network call was
// made.
var ErrValidation = errors.New("enrollment form validation failed")

// SubmitResult is the outcome of a create or update call.
type SubmitResult struct {
	Success      bool   `json:"success"`
	Message      string `json:"message,omitempty"`
	EnrollmentID uint   `json:"enrollmentId,omitempty"`
	UserID       uint   `json:"userId,omitempty"`
}

// PublicSubmitResult is the outcome of the public variant, which
// provisions the account and the enrollment in one call.
type PublicSubmitResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	UserID    uint   `json:"userId,omitempty"`
	StudentID uint   `json:"studentId,omitempty"`
	Email     string `json:"email,omitempty"`
	FullName  string `json:"fullName,omitempty"`
}

// DocumentUploader uploads one staged file at a time, associated with
// the authenticated subject.
type DocumentUploader interface {
	Upload(file StagedFile, subjectID uint) (string, error)
}

// EnrollmentAPI is the external enrollment service consumed by the
// authenticated flows. GetByStudentID returns (nil, nil) when no prior
// record exists.
type EnrollmentAPI interface {
	GetByStudentID(studentID uint) (*WireRecord, error)
	Submit(rec *WireRecord, studentID uint) (*SubmitResult, error)
	Update(rec *WireRecord, studentID uint) (*SubmitResult, error)
}

// PublicEnrollmentAPI is the unauthenticated variant: the wire request
// plus a password provisions a new account and the enrollment record
// atomically on the server side.
type PublicEnrollmentAPI interface {
	SubmitPublic(rec *WireRecord, password string) (*PublicSubmitResult, error)
}

// Pipeline orchestrates final submission: validate everything, upload
// staged files one at a time, map to the wire shape and create or
// update. Uploads that complete before a later failure are not rolled
// back; the document reaper on the server side collects orphans.
type Pipeline struct {
	form    *Form
	wizard  *Wizard
	pad     *Pad
	uploads DocumentUploader
	api     EnrollmentAPI
	notify  Notifier
	variant Variant

	subjectID uint
	hasRecord bool
}

func NewPipeline(form *Form, wizard *Wizard, pad *Pad, uploads DocumentUploader, api EnrollmentAPI, notify Notifier, variant Variant) *Pipeline {
	if notify == nil {
		notify = NopNotifier{}
	}
	return &Pipeline{
		form:    form,
		wizard:  wizard,
		pad:     pad,
		uploads: uploads,
		api:     api,
		notify:  notify,
		variant: variant,
	}
}

// Load fetches the subject's existing enrollment record, if any, into
// the form. A fetch failure or an absent record both mean "no existing
// enrollment yet" and leave the form on its empty defaults.
func (p *Pipeline) Load(subjectID uint) {
	p.subjectID = subjectID
	rec, err := p.api.GetByStudentID(subjectID)
	if err != nil || rec == nil {
		return
	}
	p.form.LoadWire(rec)
	p.hasRecord = rec.Completed
}

// Submit runs the full pipeline. Each step is a hard gate on the next.
func (p *Pipeline) Submit() (*SubmitResult, error) {
	p.captureSignature()

	if !p.validateAll() {
		return nil, ErrValidation
	}

	if err := p.uploadStaged(); err != nil {
		return nil, err
	}

	rec := p.form.Wire()

	var (
		res *SubmitResult
		err error
	)
	if p.hasRecord {
		res, err = p.api.Update(rec, p.subjectID)
	} else {
		res, err = p.api.Submit(rec, p.subjectID)
	}
	if err != nil {
		p.notify.Error(failureMessage(err.Error()))
		return nil, err
	}
	if !res.Success {
		p.notify.Error(failureMessage(res.Message))
		return res, nil
	}

	p.hasRecord = true
	p.notify.Success("Enrollment form submitted successfully!")
	return res, nil
}

// SubmitPublic runs the public variant: same validation and wire
// mapping, but account creation and enrollment happen in one call and
// no document uploads are staged for an account that does not exist
// yet.
func (p *Pipeline) SubmitPublic(api PublicEnrollmentAPI, password string) (*PublicSubmitResult, error) {
	p.captureSignature()

	if !p.validateAll() {
		return nil, ErrValidation
	}

	res, err := api.SubmitPublic(p.form.Wire(), password)
	if err != nil {
		p.notify.Error(failureMessage(err.Error()))
		return nil, err
	}
	if !res.Success {
		p.notify.Error(failureMessage(res.Message))
		return res, nil
	}

	p.notify.Success("Enrollment submitted! Check your email for your account details.")
	return res, nil
}

// captureSignature copies the drawing surface output into the privacy
// section before validation; an untouched surface leaves it empty and
// validation rejects it.
func (p *Pipeline) captureSignature() {
	if p.pad != nil {
		p.form.Privacy.SignatureData = p.pad.Data()
	}
}

// validateAll validates every section. On failure the wizard jumps to
// the first invalid section and a generic notice is surfaced.
func (p *Pipeline) validateAll() bool {
	all := ValidateAll(p.form, p.variant)
	if len(all) == 0 {
		return true
	}
	for section := SectionApplicant; section <= SectionPrivacy; section++ {
		p.form.SetErrors(section, all[section])
	}
	for section := SectionApplicant; section <= SectionPrivacy; section++ {
		if len(all[section]) > 0 {
			if p.wizard != nil {
				p.wizard.GoTo(section)
			}
			break
		}
	}
	p.notify.Error("Please fill in all required fields!")
	return false
}

// uploadStaged uploads the staged files one at a time, in the fixed
// slot order. Uploads are sequential so a failure leaves no uploads
// silently in flight; the first failure aborts the pipeline.
func (p *Pipeline) uploadStaged() error {
	for _, file := range p.form.StagedFiles() {
		if p.uploads == nil {
			err := errors.New("no document uploader configured")
			p.notify.Error(failureMessage(""))
			return err
		}
		url, err := p.uploads.Upload(file, p.subjectID)
		if err != nil {
			p.notify.Error(failureMessage(err.Error()))
			return err
		}
		p.form.markUploaded(file.Field, url)
	}
	return nil
}

func failureMessage(msg string) string {
	if msg == "" {
		return "Failed to submit form!"
	}
	return msg
}
