package enrollment

import (
	"regexp"
	"time"
)

// Section validators. Each one is pure: it maps the current section
// data to a field-name -> message map and never touches anything else.
// A section is valid iff the returned map is empty.

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	postcodeRegex = regexp.MustCompile(`^\d{4}$`)
	yearRegex     = regexp.MustCompile(`^\d{4}$`)
	usiRegex      = regexp.MustCompile(`^[A-Za-z0-9]{10}$`)
	phoneRegex    = regexp.MustCompile(`^[0-9 +()-]{8,15}$`)
)

// requiredMessages gives every required field its own human message.
// Fields not listed fall back to a generic one.
var requiredMessages = map[string]string{
	"title":     "Title is required!",
	"surname":   "Surname is required!",
	"givenName": "Given name is required!",
	"dob":       "Date of birth is required!",
	"gender":    "Gender is required!",
	"mobile":    "Mobile number is required!",
	"email":     "Email address is required!",

	"resAddress":  "Residential address is required!",
	"resSuburb":   "Residential suburb is required!",
	"resState":    "Residential state is required!",
	"resPostcode": "Residential postcode is required!",

	"postAddress":  "Postal address is required!",
	"postSuburb":   "Postal suburb is required!",
	"postState":    "Postal state is required!",
	"postPostcode": "Postal postcode is required!",

	"emergencyName":          "Emergency contact name is required!",
	"emergencyRelationship":  "Emergency contact relationship is required!",
	"emergencyContactNumber": "Emergency contact number is required!",
	"emergencyPermission":    "Please tell us whether we may transport you in an emergency!",

	"usiApply":     "Please select whether you want us to apply for a USI on your behalf!",
	"authName":     "Authorizing name is required!",
	"authConsent":  "Consent to apply on your behalf is required!",
	"townOfBirth":  "Town/city of birth is required!",
	"overseasCity": "Overseas city of birth is required!",
	"usiIdType":    "Please select an identity document type!",
	"usiFile":      "An identity document upload is required!",

	"licenceState":  "Driver's licence state is required!",
	"licenceNumber": "Driver's licence number is required!",

	"medicareNumber": "Medicare number is required!",
	"medicareIRN":    "Medicare individual reference number is required!",
	"medicareColor":  "Medicare card colour is required!",
	"medicareExpiry": "Medicare card expiry is required!",

	"birthCertState": "Birth certificate state is required!",
	"immiCardNumber": "ImmiCard number is required!",

	"ausPassportNumber":  "Australian passport number is required!",
	"intPassportNumber":  "Passport number is required!",
	"intPassportCountry": "Passport country is required!",

	"citizenshipStockNumber":  "Citizenship certificate stock number is required!",
	"citizenshipAcquiredDate": "Citizenship acquisition date is required!",
	"descentAcquiredDate":     "Descent registration acquisition date is required!",

	"schoolLevel":         "Highest school level is required!",
	"schoolYear":          "School completion year is required!",
	"schoolState":         "School state is required!",
	"schoolPostcode":      "School postcode is required!",
	"schoolCountry":       "School country is required!",
	"hasPostQual":         "Please tell us whether you have a post-secondary qualification!",
	"qualLevels":          "Please select at least one qualification level!",
	"qualDetails":         "Qualification details are required!",
	"qualFile":            "Qualification evidence upload is required!",
	"employmentStatus":    "Employment status is required!",
	"trainingReason":      "Reason for training is required!",
	"trainingReasonOther": "Please describe your reason for training!",

	"birthCountry":     "Country of birth is required!",
	"langOther":        "Please tell us whether you speak another language at home!",
	"homeLanguage":     "Home language is required!",
	"indigenousStatus": "Indigenous status is required!",
	"hasDisability":    "Please tell us whether you have a disability!",
	"disabilityTypes":  "Please select at least one disability category!",

	"privacyAccepted": "Please accept the privacy notice!",
	"termsAccepted":   "Please accept the terms and conditions!",
	"declName":        "Declarant name is required!",
	"declDate":        "Declaration date is required!",
	"signatureData":   "Signature is required!",
}

func requiredMessage(field string) string {
	if msg, ok := requiredMessages[field]; ok {
		return msg
	}
	return "This field is required!"
}

// requiredErrors runs the required-field policy (base set plus the gate
// table) against the section data.
func requiredErrors(section Section, data interface{}, variant Variant) map[string]string {
	values := fieldValues(data)
	errors := make(map[string]string)
	for _, field := range RequiredFields(section, data, variant) {
		if fieldEmpty(values[field]) {
			errors[field] = requiredMessage(field)
		}
	}
	return errors
}

func isValidDate(value string) bool {
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

// ValidateApplicant validates section 1.
func ValidateApplicant(a ApplicantDetails, variant Variant) map[string]string {
	errors := requiredErrors(SectionApplicant, a, variant)

	if a.Email != "" && errors["email"] == "" && !emailRegex.MatchString(a.Email) {
		errors["email"] = "Invalid email address!"
	}
	if a.Mobile != "" && errors["mobile"] == "" && !phoneRegex.MatchString(a.Mobile) {
		errors["mobile"] = "Invalid mobile number!"
	}
	if a.DOB != "" && errors["dob"] == "" && !isValidDate(a.DOB) {
		errors["dob"] = "Date of birth must be a valid date!"
	}
	if a.Title != "" && errors["title"] == "" && !inCatalog(Titles, a.Title) {
		errors["title"] = "Invalid title!"
	}
	if a.Gender != "" && errors["gender"] == "" && !inCatalog(Genders, a.Gender) {
		errors["gender"] = "Invalid gender selection!"
	}
	if a.ResState != "" && errors["resState"] == "" && !inCatalog(States, a.ResState) {
		errors["resState"] = "Invalid residential state!"
	}
	if a.ResPostcode != "" && errors["resPostcode"] == "" && !postcodeRegex.MatchString(a.ResPostcode) {
		errors["resPostcode"] = "Postcode must be 4 digits!"
	}
	if a.PostalDifferent {
		if a.PostState != "" && errors["postState"] == "" && !inCatalog(States, a.PostState) {
			errors["postState"] = "Invalid postal state!"
		}
		if a.PostPostcode != "" && errors["postPostcode"] == "" && !postcodeRegex.MatchString(a.PostPostcode) {
			errors["postPostcode"] = "Postcode must be 4 digits!"
		}
	}
	return errors
}

// ValidateUSI validates section 2. The required sub-set is decided by
// the apply flag and the selected identity document type; the strict
// variant additionally requires the identity document upload.
func ValidateUSI(u USIDetails, variant Variant) map[string]string {
	errors := requiredErrors(SectionUSI, u, variant)

	if u.USI != "" && !usiRegex.MatchString(u.USI) {
		errors["usi"] = "USI must be exactly 10 letters or digits!"
	}
	if u.USIApply != "" && u.USIApply != Yes && u.USIApply != No {
		errors["usiApply"] = "Please answer Yes or No!"
	}
	if u.USIApply == Yes {
		if u.USIIDType != "" && errors["usiIdType"] == "" && !inCatalog(USIDocumentTypes, u.USIIDType) {
			errors["usiIdType"] = "Invalid identity document type!"
		}
		if u.MedicareColor != "" && errors["medicareColor"] == "" && !inCatalog(MedicareColors, u.MedicareColor) {
			errors["medicareColor"] = "Invalid Medicare card colour!"
		}
		if u.LicenceState != "" && errors["licenceState"] == "" && !inCatalog(States, u.LicenceState) {
			errors["licenceState"] = "Invalid driver's licence state!"
		}
	}
	return errors
}

// ValidateEducation validates section 3.
func ValidateEducation(e EducationDetails, variant Variant) map[string]string {
	errors := requiredErrors(SectionEducation, e, variant)

	if e.SchoolLevel != "" && errors["schoolLevel"] == "" && !inCatalog(SchoolLevels, e.SchoolLevel) {
		errors["schoolLevel"] = "Invalid school level!"
	}
	if e.SchoolYear != "" && errors["schoolYear"] == "" && !yearRegex.MatchString(e.SchoolYear) {
		errors["schoolYear"] = "Completion year must be a 4-digit year!"
	}
	if e.SchoolInAus {
		if e.SchoolState != "" && errors["schoolState"] == "" && !inCatalog(States, e.SchoolState) {
			errors["schoolState"] = "Invalid school state!"
		}
		if e.SchoolPostcode != "" && errors["schoolPostcode"] == "" && !postcodeRegex.MatchString(e.SchoolPostcode) {
			errors["schoolPostcode"] = "Postcode must be 4 digits!"
		}
	}
	if e.EmploymentStatus != "" && errors["employmentStatus"] == "" && !inCatalog(EmploymentStatuses, e.EmploymentStatus) {
		errors["employmentStatus"] = "Invalid employment status!"
	}
	if e.TrainingReason != "" && errors["trainingReason"] == "" && !inCatalog(TrainingReasons, e.TrainingReason) {
		errors["trainingReason"] = "Invalid training reason!"
	}
	return errors
}

// ValidateAdditional validates section 4.
func ValidateAdditional(a AdditionalInfo, variant Variant) map[string]string {
	errors := requiredErrors(SectionAdditional, a, variant)

	if a.IndigenousStatus != "" && errors["indigenousStatus"] == "" && !inCatalog(IndigenousStatuses, a.IndigenousStatus) {
		errors["indigenousStatus"] = "Invalid indigenous status!"
	}
	return errors
}

// ValidatePrivacy validates section 5.
func ValidatePrivacy(p PrivacyTerms, variant Variant) map[string]string {
	errors := requiredErrors(SectionPrivacy, p, variant)

	if p.DeclDate != "" && errors["declDate"] == "" && !isValidDate(p.DeclDate) {
		errors["declDate"] = "Declaration date must be a valid date!"
	}
	return errors
}

// ValidateSection dispatches to the section's validator.
func ValidateSection(f *Form, section Section, variant Variant) map[string]string {
	switch section {
	case SectionApplicant:
		return ValidateApplicant(f.Applicant, variant)
	case SectionUSI:
		return ValidateUSI(f.USI, variant)
	case SectionEducation:
		return ValidateEducation(f.Education, variant)
	case SectionAdditional:
		return ValidateAdditional(f.Additional, variant)
	case SectionPrivacy:
		return ValidatePrivacy(f.Privacy, variant)
	}
	return map[string]string{}
}

// ValidateAll validates every section and returns only the ones that
// carry errors.
func ValidateAll(f *Form, variant Variant) map[Section]map[string]string {
	all := make(map[Section]map[string]string)
	for section := SectionApplicant; section <= SectionPrivacy; section++ {
		if errs := ValidateSection(f, section, variant); len(errs) > 0 {
			all[section] = errs
		}
	}
	return all
}

// FlattenErrors merges per-section error maps into one field-keyed map.
// Field names are unique across the five sections so nothing collides.
func FlattenErrors(all map[Section]map[string]string) map[string]string {
	flat := make(map[string]string)
	for _, errs := range all {
		for field, msg := range errs {
			flat[field] = msg
		}
	}
	return flat
}
