package enrollment

// USIDocument is the tagged representation of the applicant's selected
// identity document. Each variant carries exactly the sub-fields that
// document type requires, so the wire mapper emits only the selected
// variant's fields and nothing from the other seven.
type USIDocument interface {
	DocType() string
}

type DriversLicence struct {
	State  string
	Number string
}

type MedicareCard struct {
	Number string
	IRN    string
	Color  string
	Expiry string
}

type BirthCertificate struct {
	State string
}

type ImmiCard struct {
	Number string
}

type AusPassport struct {
	Number string
}

type IntPassport struct {
	Number  string
	Country string
}

type CitizenshipCertificate struct {
	StockNumber  string
	AcquiredDate string
}

type DescentRegistration struct {
	AcquiredDate string
}

func (DriversLicence) DocType() string         { return USIDocDriversLicence }
func (MedicareCard) DocType() string           { return USIDocMedicare }
func (BirthCertificate) DocType() string       { return USIDocBirthCertificate }
func (ImmiCard) DocType() string               { return USIDocImmiCard }
func (AusPassport) DocType() string            { return USIDocAusPassport }
func (IntPassport) DocType() string            { return USIDocIntPassport }
func (CitizenshipCertificate) DocType() string { return USIDocCitizenshipCert }
func (DescentRegistration) DocType() string    { return USIDocDescentRegistered }

// Document returns the typed identity document selected in the section,
// or nil when the applicant is not applying for a USI or has not picked
// a document type yet.
func (u USIDetails) Document() USIDocument {
	if u.USIApply != Yes {
		return nil
	}
	switch u.USIIDType {
	case USIDocDriversLicence:
		return DriversLicence{State: u.LicenceState, Number: u.LicenceNumber}
	case USIDocMedicare:
		return MedicareCard{Number: u.MedicareNumber, IRN: u.MedicareIRN, Color: u.MedicareColor, Expiry: u.MedicareExpiry}
	case USIDocBirthCertificate:
		return BirthCertificate{State: u.BirthCertState}
	case USIDocImmiCard:
		return ImmiCard{Number: u.ImmiCardNumber}
	case USIDocAusPassport:
		return AusPassport{Number: u.AusPassportNumber}
	case USIDocIntPassport:
		return IntPassport{Number: u.IntPassportNumber, Country: u.IntPassportCountry}
	case USIDocCitizenshipCert:
		return CitizenshipCertificate{StockNumber: u.CitizenshipStockNumber, AcquiredDate: u.CitizenshipAcquiredDate}
	case USIDocDescentRegistered:
		return DescentRegistration{AcquiredDate: u.DescentAcquiredDate}
	}
	return nil
}

// applyDocument writes a typed document back onto the flat section
// fields, clearing the fields of every other document type first.
func (u *USIDetails) applyDocument(doc USIDocument) {
	u.LicenceState, u.LicenceNumber = "", ""
	u.MedicareNumber, u.MedicareIRN, u.MedicareColor, u.MedicareExpiry = "", "", "", ""
	u.BirthCertState = ""
	u.ImmiCardNumber = ""
	u.AusPassportNumber = ""
	u.IntPassportNumber, u.IntPassportCountry = "", ""
	u.CitizenshipStockNumber, u.CitizenshipAcquiredDate = "", ""
	u.DescentAcquiredDate = ""

	switch d := doc.(type) {
	case DriversLicence:
		u.LicenceState, u.LicenceNumber = d.State, d.Number
	case MedicareCard:
		u.MedicareNumber, u.MedicareIRN, u.MedicareColor, u.MedicareExpiry = d.Number, d.IRN, d.Color, d.Expiry
	case BirthCertificate:
		u.BirthCertState = d.State
	case ImmiCard:
		u.ImmiCardNumber = d.Number
	case AusPassport:
		u.AusPassportNumber = d.Number
	case IntPassport:
		u.IntPassportNumber, u.IntPassportCountry = d.Number, d.Country
	case CitizenshipCertificate:
		u.CitizenshipStockNumber, u.CitizenshipAcquiredDate = d.StockNumber, d.AcquiredDate
	case DescentRegistration:
		u.DescentAcquiredDate = d.AcquiredDate
	}
}
