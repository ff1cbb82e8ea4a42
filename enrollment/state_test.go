package enrollment

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdatePreservesUntouchedFields(t *testing.T) {
	f := validForm()

	require.NoError(t, f.Update(SectionApplicant, Patch{"suburb": nil}))
	require.NoError(t, f.Update(SectionApplicant, Patch{"mobile": "0400111222"}))

	assert.Equal(t, "0400111222", f.Applicant.Mobile)
	assert.Equal(t, "Nguyen", f.Applicant.Surname)
	assert.Equal(t, "12 Harbour St", f.Applicant.ResAddress)
}

func TestUpdatePrunesErrorsForEditedFieldsOnly(t *testing.T) {
	f := NewForm()
	f.SetErrors(SectionApplicant, map[string]string{
		"surname": "Surname is required!",
		"email":   "Email address is required!",
	})

	require.NoError(t, f.Update(SectionApplicant, Patch{"surname": "Carter"}))

	errs := f.Errors(SectionApplicant)
	assert.NotContains(t, errs, "surname")
	assert.Contains(t, errs, "email")
}

func TestUpdateUnknownSection(t *testing.T) {
	f := NewForm()
	assert.Error(t, f.Update(Section(9), Patch{"surname": "Carter"}))
}

func TestLoadWireTrimsDatePortions(t *testing.T) {
	f := NewForm()
	f.LoadWire(&WireRecord{
		ApplicantDetails: ApplicantDetails{DOB: "1998-04-12T00:00:00Z"},
		PrivacyTerms:     PrivacyTerms{DeclDate: "2025-02-10T11:22:33Z"},
	})

	assert.Equal(t, "1998-04-12", f.Applicant.DOB)
	assert.Equal(t, "2025-02-10", f.Privacy.DeclDate)
}

func TestLoadWireAbsentFieldsDefault(t *testing.T) {
	f := NewForm()

	var rec WireRecord
	require.NoError(t, json.Unmarshal([]byte(`{"surname":"Carter"}`), &rec))
	f.LoadWire(&rec)

	assert.Equal(t, "Carter", f.Applicant.Surname)
	assert.Equal(t, "", f.Applicant.GivenName)
	assert.False(t, f.Applicant.PostalDifferent)
	assert.Nil(t, f.Education.QualLevels)
}

func TestWireRoundTripRevalidatesClean(t *testing.T) {
	f := validForm()
	require.Empty(t, ValidateAll(f, VariantStudent))

	raw, err := json.Marshal(f.Wire())
	require.NoError(t, err)

	var rec WireRecord
	require.NoError(t, json.Unmarshal(raw, &rec))

	reloaded := NewForm()
	reloaded.LoadWire(&rec)

	assert.Empty(t, ValidateAll(reloaded, VariantStudent))
}

func TestWireOmitsGatedOffFields(t *testing.T) {
	f := validForm()

	// stray values behind closed gates must not reach the wire
	f.USI.MedicareNumber = "2428778132"
	f.USI.AuthName = "left over"
	f.Education.QualLevels = []string{"Diploma"}
	f.Education.QualDetails = "stale"
	f.Additional.DisabilityTypes = []string{"Vision"}
	f.Applicant.PostAddress = "old postal"

	raw, err := json.Marshal(f.Wire())
	require.NoError(t, err)

	var flat map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &flat))

	for _, field := range []string{
		"medicareNumber", "authName", "qualLevels", "qualDetails",
		"disabilityTypes", "postAddress",
	} {
		assert.NotContains(t, flat, field)
	}
	assert.Contains(t, flat, "surname")
	assert.Equal(t, true, flat["formCompleted"])
}

func TestWireKeepsOnlySelectedUSIDocumentFields(t *testing.T) {
	f := validForm()
	applyingUSI(f, USIDocIntPassport)
	f.USI.IntPassportNumber = "K1234567"
	f.USI.IntPassportCountry = "Vietnam"
	// stale values from a previously selected type
	f.USI.MedicareNumber = "2428778132"
	f.USI.LicenceNumber = "99999999"

	rec := f.Wire()
	assert.Equal(t, "K1234567", rec.IntPassportNumber)
	assert.Equal(t, "Vietnam", rec.IntPassportCountry)
	assert.Empty(t, rec.MedicareNumber)
	assert.Empty(t, rec.LicenceNumber)
}

func TestStageFileFillsSectionSlot(t *testing.T) {
	f := validForm()

	require.NoError(t, f.StageFile(StagedFile{Field: "idDoc1", Name: "passport.pdf", Content: []byte("pdf")}))
	require.NoError(t, f.StageFile(StagedFile{Field: "qualFile", Name: "cert.pdf", Content: []byte("pdf")}))
	assert.Error(t, f.StageFile(StagedFile{Field: "somethingElse", Name: "x"}))

	assert.Equal(t, "passport.pdf", f.Applicant.IDDoc1)
	assert.Equal(t, "cert.pdf", f.Education.QualFile)

	files := f.StagedFiles()
	require.Len(t, files, 2)
	assert.Equal(t, "idDoc1", files[0].Field)
	assert.Equal(t, "qualFile", files[1].Field)
}
