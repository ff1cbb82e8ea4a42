package enrollment

import "strings"

// WireRecord is the flattened object shape exchanged with the
// enrollment API. The five section structs embed into it so their JSON
// tags stay the single source of field names on the wire.
type WireRecord struct {
	ApplicantDetails
	USIDetails
	EducationDetails
	AdditionalInfo
	PrivacyTerms

	Completed bool `json:"formCompleted"`
}

// datePortion drops any time component a wire date may carry, keeping
// only the yyyy-mm-dd part.
func datePortion(value string) string {
	if i := strings.IndexAny(value, "T "); i >= 0 {
		return value[:i]
	}
	return value
}

// LoadWire maps a previously submitted wire record back into the five
// section shape for continued editing. Absent wire fields land on their
// zero defaults; date-like fields are trimmed to their date portion so
// re-validation of an already accepted record stays clean.
func (f *Form) LoadWire(rec *WireRecord) {
	if rec == nil {
		return
	}
	f.Applicant = rec.ApplicantDetails
	f.USI = rec.USIDetails
	f.Education = rec.EducationDetails
	f.Additional = rec.AdditionalInfo
	f.Privacy = rec.PrivacyTerms

	f.Applicant.DOB = datePortion(f.Applicant.DOB)
	f.USI.MedicareExpiry = datePortion(f.USI.MedicareExpiry)
	f.USI.CitizenshipAcquiredDate = datePortion(f.USI.CitizenshipAcquiredDate)
	f.USI.DescentAcquiredDate = datePortion(f.USI.DescentAcquiredDate)
	f.Privacy.DeclDate = datePortion(f.Privacy.DeclDate)

	f.loadedCompleted = rec.Completed
}

// Wire maps the in-memory sections to the flat request shape. Fields
// whose gate is off are dropped entirely rather than sent empty, and
// only the selected USI document variant's sub-fields survive.
func (f *Form) Wire() *WireRecord {
	rec := &WireRecord{
		ApplicantDetails: f.Applicant,
		USIDetails:       f.USI,
		EducationDetails: f.Education,
		AdditionalInfo:   f.Additional,
		PrivacyTerms:     f.Privacy,
		Completed:        true,
	}

	if !rec.PostalDifferent {
		rec.PostAddress, rec.PostSuburb, rec.PostState, rec.PostPostcode = "", "", "", ""
	}

	if rec.USIApply != Yes {
		rec.AuthName = ""
		rec.AuthConsent = false
		rec.TownOfBirth = ""
		rec.OverseasCity = ""
		rec.USIIDType = ""
		rec.USIFile = ""
		rec.USIDetails.applyDocument(nil)
	} else {
		// Keeps exactly the selected document type's sub-fields.
		rec.USIDetails.applyDocument(f.USI.Document())
	}

	if rec.SchoolInAus {
		rec.SchoolCountry = ""
	} else {
		rec.SchoolState, rec.SchoolPostcode = "", ""
	}

	if rec.HasPostQual != Yes {
		rec.QualLevels = nil
		rec.QualDetails = ""
		rec.QualFile = ""
	}

	if rec.LangOther != Yes {
		rec.HomeLanguage = ""
	}

	if rec.HasDisability != Yes {
		rec.DisabilityTypes = nil
		rec.DisabilityNotes = ""
	}

	return rec
}
