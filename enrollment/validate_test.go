package enrollment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullyPopulatedFormIsValid(t *testing.T) {
	f := validForm()

	assert.Empty(t, ValidateApplicant(f.Applicant, VariantStudent))
	assert.Empty(t, ValidateUSI(f.USI, VariantStudent))
	assert.Empty(t, ValidateEducation(f.Education, VariantStudent))
	assert.Empty(t, ValidateAdditional(f.Additional, VariantStudent))
	assert.Empty(t, ValidatePrivacy(f.Privacy, VariantStudent))
	assert.Empty(t, ValidateAll(f, VariantStudent))
}

func TestApplicantMissingRequiredFields(t *testing.T) {
	required := []string{
		"title", "surname", "givenName", "dob", "gender", "mobile", "email",
		"resAddress", "resSuburb", "resState", "resPostcode",
		"emergencyName", "emergencyRelationship", "emergencyContactNumber", "emergencyPermission",
	}

	for _, field := range required {
		t.Run(field, func(t *testing.T) {
			f := validForm()
			require.NoError(t, f.Update(SectionApplicant, Patch{field: ""}))

			errs := ValidateApplicant(f.Applicant, VariantStudent)
			assert.Contains(t, errs, field)
			assert.NotEmpty(t, errs[field])
		})
	}
}

func TestApplicantOptionalFieldsMayBeEmpty(t *testing.T) {
	f := validForm()
	// middle/preferred name and the extra phone numbers are optional
	errs := ValidateApplicant(f.Applicant, VariantStudent)
	assert.Empty(t, errs)
}

func TestPostalAddressGate(t *testing.T) {
	f := validForm()
	require.NoError(t, f.Update(SectionApplicant, Patch{"postalDifferent": true}))

	errs := ValidateApplicant(f.Applicant, VariantStudent)
	assert.Contains(t, errs, "postAddress")
	assert.Contains(t, errs, "postSuburb")
	assert.Contains(t, errs, "postState")
	assert.Contains(t, errs, "postPostcode")

	// gate off: postal fields are never required, whatever they hold
	require.NoError(t, f.Update(SectionApplicant, Patch{"postalDifferent": false}))
	errs = ValidateApplicant(f.Applicant, VariantStudent)
	assert.NotContains(t, errs, "postAddress")
	assert.Empty(t, errs)
}

func TestApplicantFormatChecks(t *testing.T) {
	f := validForm()
	require.NoError(t, f.Update(SectionApplicant, Patch{"email": "not-an-email"}))
	errs := ValidateApplicant(f.Applicant, VariantStudent)
	assert.Equal(t, "Invalid email address!", errs["email"])

	f = validForm()
	require.NoError(t, f.Update(SectionApplicant, Patch{"resPostcode": "25"}))
	errs = ValidateApplicant(f.Applicant, VariantStudent)
	assert.Contains(t, errs, "resPostcode")
}

func TestUSINotApplyingNeedsNoAuthorizationFields(t *testing.T) {
	f := validForm()
	f.USI = USIDetails{USIApply: No}

	assert.Empty(t, ValidateUSI(f.USI, VariantStudent))
	assert.Empty(t, ValidateUSI(f.USI, VariantStrict))
}

func TestUSIStaleDocumentTypeIgnoredWhenNotApplying(t *testing.T) {
	// switching back to "No" leaves the previously selected type in
	// place; its sub-fields must not become mandatory
	u := USIDetails{USIApply: No, USIIDType: USIDocMedicare}

	assert.Empty(t, ValidateUSI(u, VariantStudent))
	assert.Empty(t, ValidateUSI(u, VariantStrict))
}

func TestUSIApplySelectorAlwaysMandatory(t *testing.T) {
	errs := ValidateUSI(USIDetails{}, VariantStudent)
	assert.Contains(t, errs, "usiApply")
}

func TestUSIMedicareRequiresExactlyItsFields(t *testing.T) {
	f := validForm()
	applyingUSI(f, USIDocMedicare)

	errs := ValidateUSI(f.USI, VariantStudent)

	expected := []string{"medicareNumber", "medicareIRN", "medicareColor", "medicareExpiry"}
	for _, field := range expected {
		assert.Contains(t, errs, field)
	}
	assert.Len(t, errs, len(expected))

	// none of the other document types' fields are flagged
	assert.NotContains(t, errs, "licenceNumber")
	assert.NotContains(t, errs, "ausPassportNumber")
	assert.NotContains(t, errs, "citizenshipStockNumber")
}

func TestUSIDocumentTypeSwitchDropsStaleRequirements(t *testing.T) {
	f := validForm()
	applyingUSI(f, USIDocAusPassport)

	errs := ValidateUSI(f.USI, VariantStudent)
	assert.Contains(t, errs, "ausPassportNumber")
	assert.NotContains(t, errs, "medicareNumber")

	require.NoError(t, f.Update(SectionUSI, Patch{"usiIdType": USIDocBirthCertificate}))
	errs = ValidateUSI(f.USI, VariantStudent)
	assert.Contains(t, errs, "birthCertState")
	assert.NotContains(t, errs, "ausPassportNumber")
}

func TestUSIIdentityFileRequiredOnlyInStrictVariant(t *testing.T) {
	f := validForm()
	applyingUSI(f, USIDocDriversLicence)
	f.USI.LicenceState = "NSW"
	f.USI.LicenceNumber = "12345678"

	assert.NotContains(t, ValidateUSI(f.USI, VariantPublic), "usiFile")
	assert.NotContains(t, ValidateUSI(f.USI, VariantStudent), "usiFile")
	assert.Contains(t, ValidateUSI(f.USI, VariantStrict), "usiFile")
}

func TestUSIFormatCheck(t *testing.T) {
	f := validForm()
	f.USI.USI = "TOOSHORT"
	errs := ValidateUSI(f.USI, VariantStudent)
	assert.Contains(t, errs, "usi")
}

func TestEducationSchoolCountryGate(t *testing.T) {
	f := validForm()
	require.NoError(t, f.Update(SectionEducation, Patch{
		"schoolInAus":    false,
		"schoolState":    "",
		"schoolPostcode": "",
	}))

	errs := ValidateEducation(f.Education, VariantStudent)
	assert.Contains(t, errs, "schoolCountry")
	assert.NotContains(t, errs, "schoolState")
	assert.NotContains(t, errs, "schoolPostcode")
}

func TestEducationQualificationGate(t *testing.T) {
	f := validForm()
	require.NoError(t, f.Update(SectionEducation, Patch{"hasPostQual": Yes}))

	errs := ValidateEducation(f.Education, VariantStudent)
	assert.Contains(t, errs, "qualLevels")
	assert.Contains(t, errs, "qualDetails")
	assert.NotContains(t, errs, "qualFile")

	errs = ValidateEducation(f.Education, VariantStrict)
	assert.Contains(t, errs, "qualFile")
}

func TestEducationOtherTrainingReason(t *testing.T) {
	f := validForm()
	require.NoError(t, f.Update(SectionEducation, Patch{"trainingReason": TrainingReasonOther}))

	errs := ValidateEducation(f.Education, VariantStudent)
	assert.Contains(t, errs, "trainingReasonOther")

	require.NoError(t, f.Update(SectionEducation, Patch{"trainingReasonOther": "Workplace requirement"}))
	assert.Empty(t, ValidateEducation(f.Education, VariantStudent))
}

func TestAdditionalLanguageGate(t *testing.T) {
	f := validForm()
	require.NoError(t, f.Update(SectionAdditional, Patch{"langOther": Yes}))

	errs := ValidateAdditional(f.Additional, VariantStudent)
	assert.Contains(t, errs, "homeLanguage")

	require.NoError(t, f.Update(SectionAdditional, Patch{"homeLanguage": "Vietnamese"}))
	assert.Empty(t, ValidateAdditional(f.Additional, VariantStudent))
}

func TestAdditionalDisabilityGate(t *testing.T) {
	f := validForm()
	require.NoError(t, f.Update(SectionAdditional, Patch{"hasDisability": Yes}))

	errs := ValidateAdditional(f.Additional, VariantStudent)
	assert.Contains(t, errs, "disabilityTypes")

	require.NoError(t, f.Update(SectionAdditional, Patch{"disabilityTypes": []string{"Vision"}}))
	assert.Empty(t, ValidateAdditional(f.Additional, VariantStudent))
}

func TestPrivacyRequiresSignatureAndAcceptance(t *testing.T) {
	f := validForm()
	f.Privacy.SignatureData = ""
	errs := ValidatePrivacy(f.Privacy, VariantStudent)
	assert.Contains(t, errs, "signatureData")

	f = validForm()
	f.Privacy.PrivacyAccepted = false
	f.Privacy.TermsAccepted = false
	errs = ValidatePrivacy(f.Privacy, VariantStudent)
	assert.Contains(t, errs, "privacyAccepted")
	assert.Contains(t, errs, "termsAccepted")
}

func TestValidatorsNeverPanicOnZeroValues(t *testing.T) {
	f := NewForm()
	for section := SectionApplicant; section <= SectionPrivacy; section++ {
		assert.NotPanics(t, func() {
			ValidateSection(f, section, VariantStrict)
		})
	}
}
