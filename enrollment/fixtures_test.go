package enrollment

// validForm returns a fully and correctly populated form that passes
// every section validator under the student variant.
func validForm() *Form {
	f := NewForm()
	f.Applicant = ApplicantDetails{
		Title:       "Ms",
		Surname:     "Nguyen",
		GivenName:   "Thi",
		DOB:         "1998-04-12",
		Gender:      "Female",
		Mobile:      "0412345678",
		Email:       "thi.nguyen@example.com",
		ResAddress:  "12 Harbour St",
		ResSuburb:   "Wollongong",
		ResState:    "NSW",
		ResPostcode: "2500",

		EmergencyName:          "Minh Nguyen",
		EmergencyRelationship:  "Brother",
		EmergencyContactNumber: "0498765432",
		EmergencyPermission:    Yes,
	}
	f.USI = USIDetails{
		USI:           "ABC1234567",
		USIPermission: true,
		USIApply:      No,
	}
	f.Education = EducationDetails{
		SchoolLevel:      "Year 12 or equivalent",
		SchoolYear:       "2016",
		SchoolName:       "Wollongong High School",
		SchoolInAus:      true,
		SchoolState:      "NSW",
		SchoolPostcode:   "2500",
		HasPostQual:      No,
		EmploymentStatus: "Part-time employee",
		TrainingReason:   "To get a job",
	}
	f.Additional = AdditionalInfo{
		BirthCountry:     "Australia",
		LangOther:        No,
		IndigenousStatus: "No",
		HasDisability:    No,
	}
	f.Privacy = PrivacyTerms{
		PrivacyAccepted: true,
		TermsAccepted:   true,
		DeclName:        "Thi Nguyen",
		DeclDate:        "2025-02-10",
		SignatureData:   "data:image/png;base64,iVBORw0KGgo=",
	}
	return f
}

// applyingUSI rewires the USI section to the apply-on-my-behalf path
// with the given document type selected and its sub-fields empty.
func applyingUSI(f *Form, docType string) {
	f.USI = USIDetails{
		USIApply:     Yes,
		AuthName:     "Thi Nguyen",
		AuthConsent:  true,
		TownOfBirth:  "Hanoi",
		OverseasCity: "Hanoi",
		USIIDType:    docType,
	}
}
