package enrollment

// Section identifies one of the five enrollment form pages.
type Section int

const (
	SectionApplicant Section = iota + 1
	SectionUSI
	SectionEducation
	SectionAdditional
	SectionPrivacy

	SectionCount = 5
)

func (s Section) String() string {
	switch s {
	case SectionApplicant:
		return "Applicant Details"
	case SectionUSI:
		return "USI Details"
	case SectionEducation:
		return "Education & Employment"
	case SectionAdditional:
		return "Additional Information"
	case SectionPrivacy:
		return "Privacy & Terms"
	}
	return "Unknown"
}

// ApplicantDetails is section 1: identity, contact, residential and
// postal address, identity documents and emergency contact.
type ApplicantDetails struct {
	Title         string `json:"title"`
	Surname       string `json:"surname"`
	GivenName     string `json:"givenName"`
	MiddleName    string `json:"middleName,omitempty"`
	PreferredName string `json:"preferredName,omitempty"`
	DOB           string `json:"dob"`
	Gender        string `json:"gender"`
	HomePhone     string `json:"homePhone,omitempty"`
	WorkPhone     string `json:"workPhone,omitempty"`
	Mobile        string `json:"mobile"`
	Email         string `json:"email"`

	ResAddress  string `json:"resAddress"`
	ResSuburb   string `json:"resSuburb"`
	ResState    string `json:"resState"`
	ResPostcode string `json:"resPostcode"`

	PostalDifferent bool   `json:"postalDifferent"`
	PostAddress     string `json:"postAddress,omitempty"`
	PostSuburb      string `json:"postSuburb,omitempty"`
	PostState       string `json:"postState,omitempty"`
	PostPostcode    string `json:"postPostcode,omitempty"`

	IDDoc1 string `json:"idDoc1,omitempty"`
	IDDoc2 string `json:"idDoc2,omitempty"`

	EmergencyName          string `json:"emergencyName"`
	EmergencyRelationship  string `json:"emergencyRelationship"`
	EmergencyContactNumber string `json:"emergencyContactNumber"`
	EmergencyPermission    string `json:"emergencyPermission"` // Yes/No transport consent
}

// USIDetails is section 2: the Unique Student Identifier, or an
// authorization for the academy to apply for one on the student's
// behalf. When applying, the selected identity document type decides
// which verification sub-fields are required.
type USIDetails struct {
	USI           string `json:"usi,omitempty"`
	USIPermission bool   `json:"usiPermission"`
	USIApply      string `json:"usiApply"` // Yes/No

	AuthName     string `json:"authName,omitempty"`
	AuthConsent  bool   `json:"authConsent,omitempty"`
	TownOfBirth  string `json:"townOfBirth,omitempty"`
	OverseasCity string `json:"overseasCity,omitempty"`
	USIIDType    string `json:"usiIdType,omitempty"` // "1".."8"
	USIFile      string `json:"usiFile,omitempty"`

	LicenceState  string `json:"licenceState,omitempty"`
	LicenceNumber string `json:"licenceNumber,omitempty"`

	MedicareNumber string `json:"medicareNumber,omitempty"`
	MedicareIRN    string `json:"medicareIRN,omitempty"`
	MedicareColor  string `json:"medicareColor,omitempty"`
	MedicareExpiry string `json:"medicareExpiry,omitempty"`

	BirthCertState string `json:"birthCertState,omitempty"`
	ImmiCardNumber string `json:"immiCardNumber,omitempty"`

	AusPassportNumber  string `json:"ausPassportNumber,omitempty"`
	IntPassportNumber  string `json:"intPassportNumber,omitempty"`
	IntPassportCountry string `json:"intPassportCountry,omitempty"`

	CitizenshipStockNumber  string `json:"citizenshipStockNumber,omitempty"`
	CitizenshipAcquiredDate string `json:"citizenshipAcquiredDate,omitempty"`
	DescentAcquiredDate     string `json:"descentAcquiredDate,omitempty"`
}

// EducationDetails is section 3: schooling, prior qualifications and
// employment.
type EducationDetails struct {
	SchoolLevel string `json:"schoolLevel"`
	SchoolYear  string `json:"schoolYear"`
	SchoolName  string `json:"schoolName,omitempty"`
	SchoolInAus bool   `json:"schoolInAus"`

	SchoolState    string `json:"schoolState,omitempty"`
	SchoolPostcode string `json:"schoolPostcode,omitempty"`
	SchoolCountry  string `json:"schoolCountry,omitempty"`

	HasPostQual string   `json:"hasPostQual"` // Yes/No
	QualLevels  []string `json:"qualLevels,omitempty"`
	QualDetails string   `json:"qualDetails,omitempty"`
	QualFile    string   `json:"qualFile,omitempty"`

	EmploymentStatus string `json:"employmentStatus"`
	EmployerName     string `json:"employerName,omitempty"`
	SupervisorName   string `json:"supervisorName,omitempty"`
	EmployerPhone    string `json:"employerPhone,omitempty"`

	TrainingReason      string `json:"trainingReason"`
	TrainingReasonOther string `json:"trainingReasonOther,omitempty"`
}

// AdditionalInfo is section 4: language, indigenous status and
// disability support needs.
type AdditionalInfo struct {
	BirthCountry string `json:"birthCountry"`

	LangOther    string `json:"langOther"` // Yes/No
	HomeLanguage string `json:"homeLanguage,omitempty"`

	IndigenousStatus string `json:"indigenousStatus"`

	HasDisability   string   `json:"hasDisability"` // Yes/No
	DisabilityTypes []string `json:"disabilityTypes,omitempty"`
	DisabilityNotes string   `json:"disabilityNotes,omitempty"`
}

// PrivacyTerms is section 5: acceptance flags, declaration and the
// captured signature image.
type PrivacyTerms struct {
	PrivacyAccepted bool   `json:"privacyAccepted"`
	TermsAccepted   bool   `json:"termsAccepted"`
	DeclName        string `json:"declName"`
	DeclDate        string `json:"declDate"`
	SignatureData   string `json:"signatureData"`
}
