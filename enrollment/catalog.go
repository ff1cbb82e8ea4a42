package enrollment

// Option catalogs for the enrollment form. The wizard UI renders these
// as dropdowns/radio groups; the validators use them to reject values
// that are not in the catalog.

const (
	Yes = "Yes"
	No  = "No"
)

// USI identity document types. The selected type decides which of the
// document sub-fields are required, see usiDocumentFields in gates.go.
const (
	USIDocDriversLicence    = "1"
	USIDocMedicare          = "2"
	USIDocBirthCertificate  = "3"
	USIDocImmiCard          = "4"
	USIDocAusPassport       = "5"
	USIDocIntPassport       = "6"
	USIDocCitizenshipCert   = "7"
	USIDocDescentRegistered = "8"
)

// TrainingReasonOther routes the applicant to a free-text explanation.
const TrainingReasonOther = "Other reasons"

var Titles = []string{"Mr", "Mrs", "Ms", "Miss", "Mx", "Dr"}

var Genders = []string{"Male", "Female", "Other", "Prefer not to say"}

var States = []string{"ACT", "NSW", "NT", "QLD", "SA", "TAS", "VIC", "WA"}

var SchoolLevels = []string{
	"Year 12 or equivalent",
	"Year 11 or equivalent",
	"Year 10 or equivalent",
	"Year 9 or equivalent",
	"Year 8 or below",
	"Never attended school",
}

var QualificationLevels = []string{
	"Bachelor Degree or Higher Degree",
	"Advanced Diploma or Associate Degree",
	"Diploma",
	"Certificate IV",
	"Certificate III",
	"Certificate II",
	"Certificate I",
	"Other qualification",
}

var EmploymentStatuses = []string{
	"Full-time employee",
	"Part-time employee",
	"Self-employed - not employing others",
	"Employer",
	"Employed - unpaid worker in a family business",
	"Unemployed - seeking full-time work",
	"Unemployed - seeking part-time work",
	"Not employed - not seeking employment",
}

var TrainingReasons = []string{
	"To get a job",
	"To develop my existing business",
	"To start my own business",
	"To try for a different career",
	"To get a better job or promotion",
	"It was a requirement of my job",
	"I wanted extra skills for my job",
	"To get into another course of study",
	"For personal interest or self-development",
	TrainingReasonOther,
}

var IndigenousStatuses = []string{
	"No",
	"Yes, Aboriginal",
	"Yes, Torres Strait Islander",
	"Yes, Aboriginal and Torres Strait Islander",
}

var DisabilityTypes = []string{
	"Hearing/Deaf",
	"Physical",
	"Intellectual",
	"Learning",
	"Mental illness",
	"Acquired brain impairment",
	"Vision",
	"Medical condition",
	"Other",
}

var MedicareColors = []string{"Green", "Blue", "Yellow"}

var USIDocumentTypes = []string{
	USIDocDriversLicence,
	USIDocMedicare,
	USIDocBirthCertificate,
	USIDocImmiCard,
	USIDocAusPassport,
	USIDocIntPassport,
	USIDocCitizenshipCert,
	USIDocDescentRegistered,
}

// DocumentKinds are the staged-file slots the submission pipeline
// uploads, in upload order.
var DocumentKinds = []string{"idDoc1", "idDoc2", "usiFile", "qualFile"}

func inCatalog(catalog []string, value string) bool {
	for _, v := range catalog {
		if v == value {
			return true
		}
	}
	return false
}
