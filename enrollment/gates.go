package enrollment

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Variant selects the validation strictness of the wizard. The three
// legacy form variants shared the same five sections but disagreed on
// file-upload requiredness; they are consolidated here behind one flag.
type Variant int

const (
	// VariantPublic is the unauthenticated flow. No file uploads are
	// required (the applicant may not have scans at hand yet).
	VariantPublic Variant = iota
	// VariantStudent is the authenticated student-portal flow. Same
	// requiredness as the public flow.
	VariantStudent
	// VariantStrict additionally requires the USI identity document
	// and the qualification evidence file.
	VariantStrict
)

// gateRule makes sub-fields mandatory when a gate field holds a given
// value. Bool gates match against "true"/"false". One table drives both
// validation and presentation so the two cannot drift.
type gateRule struct {
	section  Section
	field    string
	value    string
	required []string
	strict   bool // only applies under VariantStrict

	// secondary gate; when set, the rule fires only if this pair also
	// matches. A stale selection behind a closed outer gate must never
	// make its sub-fields mandatory.
	alsoField string
	alsoValue string
}

// usiDocumentFields maps each identity document type to the sub-fields
// it requires. Kept next to the gate rules because the rules below are
// generated from it.
var usiDocumentFields = map[string][]string{
	USIDocDriversLicence:    {"licenceState", "licenceNumber"},
	USIDocMedicare:          {"medicareNumber", "medicareIRN", "medicareColor", "medicareExpiry"},
	USIDocBirthCertificate:  {"birthCertState"},
	USIDocImmiCard:          {"immiCardNumber"},
	USIDocAusPassport:       {"ausPassportNumber"},
	USIDocIntPassport:       {"intPassportNumber", "intPassportCountry"},
	USIDocCitizenshipCert:   {"citizenshipStockNumber", "citizenshipAcquiredDate"},
	USIDocDescentRegistered: {"descentAcquiredDate"},
}

// alwaysRequired lists the fields that are mandatory regardless of any
// gate value.
var alwaysRequired = map[Section][]string{
	SectionApplicant: {
		"title", "surname", "givenName", "dob", "gender", "mobile", "email",
		"resAddress", "resSuburb", "resState", "resPostcode",
		"emergencyName", "emergencyRelationship", "emergencyContactNumber", "emergencyPermission",
	},
	SectionUSI: {"usiApply"},
	SectionEducation: {
		"schoolLevel", "schoolYear", "hasPostQual", "employmentStatus", "trainingReason",
	},
	SectionAdditional: {
		"birthCountry", "langOther", "indigenousStatus", "hasDisability",
	},
	SectionPrivacy: {
		"privacyAccepted", "termsAccepted", "declName", "declDate", "signatureData",
	},
}

var gateRules = buildGateRules()

func buildGateRules() []gateRule {
	rules := []gateRule{
		{section: SectionApplicant, field: "postalDifferent", value: "true",
			required: []string{"postAddress", "postSuburb", "postState", "postPostcode"}},

		{section: SectionUSI, field: "usiApply", value: Yes,
			required: []string{"authName", "authConsent", "townOfBirth", "overseasCity", "usiIdType"}},
		{section: SectionUSI, field: "usiApply", value: Yes,
			required: []string{"usiFile"}, strict: true},

		{section: SectionEducation, field: "schoolInAus", value: "true",
			required: []string{"schoolState", "schoolPostcode"}},
		{section: SectionEducation, field: "schoolInAus", value: "false",
			required: []string{"schoolCountry"}},
		{section: SectionEducation, field: "hasPostQual", value: Yes,
			required: []string{"qualLevels", "qualDetails"}},
		{section: SectionEducation, field: "hasPostQual", value: Yes,
			required: []string{"qualFile"}, strict: true},
		{section: SectionEducation, field: "trainingReason", value: TrainingReasonOther,
			required: []string{"trainingReasonOther"}},

		{section: SectionAdditional, field: "langOther", value: Yes,
			required: []string{"homeLanguage"}},
		{section: SectionAdditional, field: "hasDisability", value: Yes,
			required: []string{"disabilityTypes"}},
	}

	// One rule per USI document type; only fires when that type is the
	// selected one AND the applicant is still applying, so neither a
	// type switch nor a switch back to "No" leaves stale requirements.
	for docType, fields := range usiDocumentFields {
		rules = append(rules, gateRule{
			section:   SectionUSI,
			field:     "usiIdType",
			value:     docType,
			required:  fields,
			alsoField: "usiApply",
			alsoValue: Yes,
		})
	}
	return rules
}

// RequiredFields computes the currently mandatory field names for a
// section given its current data. It is re-evaluated on every call, so
// a field gated off by a later edit never blocks navigation.
func RequiredFields(section Section, data interface{}, variant Variant) []string {
	values := fieldValues(data)

	required := append([]string{}, alwaysRequired[section]...)
	for _, rule := range gateRules {
		if rule.section != section {
			continue
		}
		if rule.strict && variant != VariantStrict {
			continue
		}
		if gateValue(values[rule.field]) != rule.value {
			continue
		}
		if rule.alsoField != "" && gateValue(values[rule.alsoField]) != rule.alsoValue {
			continue
		}
		required = append(required, rule.required...)
	}
	return required
}

// fieldValues flattens a section struct to its JSON field names. The
// JSON tags are the single naming source shared by error maps, patches
// and the wire record.
func fieldValues(data interface{}) map[string]interface{} {
	raw, err := json.Marshal(data)
	if err != nil {
		return map[string]interface{}{}
	}
	values := make(map[string]interface{})
	if err := json.Unmarshal(raw, &values); err != nil {
		return map[string]interface{}{}
	}
	return values
}

func gateValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return fmt.Sprintf("%t", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// fieldEmpty reports whether a flattened field value counts as unfilled
// for required-field purposes. A required bool must be true (consent
// checkboxes); a required slice must have at least one selection.
func fieldEmpty(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case bool:
		return !t
	case []interface{}:
		return len(t) == 0
	}
	return false
}
