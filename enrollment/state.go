package enrollment

import (
	"encoding/json"
	"fmt"
)

// Patch is a partial section update keyed by JSON field name, as
// emitted by a section component when one of its inputs changes.
type Patch map[string]interface{}

// StagedFile is a file the applicant attached that has not been
// uploaded yet. Field names the staged-file slot ("idDoc1", "idDoc2",
// "usiFile", "qualFile"); the matching section field holds the file
// name until the submission pipeline swaps in the uploaded URL.
type StagedFile struct {
	Field   string
	Name    string
	Content []byte
}

// Form holds the five section records, their accumulated validation
// errors and any staged file uploads for one wizard session.
type Form struct {
	Applicant  ApplicantDetails
	USI        USIDetails
	Education  EducationDetails
	Additional AdditionalInfo
	Privacy    PrivacyTerms

	errors          map[Section]map[string]string
	staged          map[string]StagedFile
	loadedCompleted bool
}

// NewForm returns an empty form. Sections start on zero defaults and
// are filled in by section edits or by loading a prior wire record.
func NewForm() *Form {
	return &Form{
		errors: make(map[Section]map[string]string),
		staged: make(map[string]StagedFile),
	}
}

func (f *Form) section(s Section) interface{} {
	switch s {
	case SectionApplicant:
		return &f.Applicant
	case SectionUSI:
		return &f.USI
	case SectionEducation:
		return &f.Education
	case SectionAdditional:
		return &f.Additional
	case SectionPrivacy:
		return &f.Privacy
	}
	return nil
}

// Update shallow-merges a patch into a section, preserving untouched
// fields, and prunes the section's error map for exactly the edited
// field names. No validation runs here; navigation and submission
// invoke it explicitly.
func (f *Form) Update(s Section, patch Patch) error {
	target := f.section(s)
	if target == nil {
		return fmt.Errorf("unknown section %d", s)
	}

	raw, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("invalid patch: %w", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("invalid patch for %s: %w", s, err)
	}

	if errs, ok := f.errors[s]; ok {
		for field := range patch {
			delete(errs, field)
		}
	}
	return nil
}

// Errors returns the current error map for a section. Never nil.
func (f *Form) Errors(s Section) map[string]string {
	if errs, ok := f.errors[s]; ok {
		return errs
	}
	return map[string]string{}
}

// SetErrors replaces a section's error map with a validation result.
func (f *Form) SetErrors(s Section, errs map[string]string) {
	if len(errs) == 0 {
		delete(f.errors, s)
		return
	}
	f.errors[s] = errs
}

// StageFile attaches a file to one of the staged-file slots and records
// the file name on the matching section field so validation sees the
// slot as filled.
func (f *Form) StageFile(file StagedFile) error {
	if !inCatalog(DocumentKinds, file.Field) {
		return fmt.Errorf("unknown document slot %q", file.Field)
	}
	f.staged[file.Field] = file
	f.setFileRef(file.Field, file.Name)
	return nil
}

// StagedFiles returns the staged uploads in the fixed upload order.
func (f *Form) StagedFiles() []StagedFile {
	var files []StagedFile
	for _, kind := range DocumentKinds {
		if file, ok := f.staged[kind]; ok {
			files = append(files, file)
		}
	}
	return files
}

// setFileRef writes an uploaded URL (or staged name) onto the section
// field that owns the slot and, on URL, clears the staged entry so a
// retried submission does not upload the file twice.
func (f *Form) setFileRef(field, ref string) {
	switch field {
	case "idDoc1":
		f.Applicant.IDDoc1 = ref
	case "idDoc2":
		f.Applicant.IDDoc2 = ref
	case "usiFile":
		f.USI.USIFile = ref
	case "qualFile":
		f.Education.QualFile = ref
	}
}

func (f *Form) markUploaded(field, url string) {
	f.setFileRef(field, url)
	delete(f.staged, field)
}
