package regon

// Entity is a search result with its fields mapped by name
type Entity struct {
	Regon             string `json:"regon" yaml:"regon"`
	Nip               string `json:"nip,omitempty" yaml:"nip,omitempty"`
	StatusNip         string `json:"statusNip,omitempty" yaml:"statusNip,omitempty"`
	Name              string `json:"name" yaml:"name"`
	Voivodeship       string `json:"voivodeship,omitempty" yaml:"voivodeship,omitempty"`
	County            string `json:"county,omitempty" yaml:"county,omitempty"`
	Commune           string `json:"commune,omitempty" yaml:"commune,omitempty"`
	City              string `json:"city,omitempty" yaml:"city,omitempty"`
	PostalCode        string `json:"postalCode,omitempty" yaml:"postalCode,omitempty"`
	Street            string `json:"street,omitempty" yaml:"street,omitempty"`
	BuildingNumber    string `json:"buildingNumber,omitempty" yaml:"buildingNumber,omitempty"`
	PremisesNumber    string `json:"premisesNumber,omitempty" yaml:"premisesNumber,omitempty"`
	Type              string `json:"type,omitempty" yaml:"type,omitempty"`
	SilosID           string `json:"silosId,omitempty" yaml:"silosId,omitempty"`
	EndOfActivityDate string `json:"endOfActivityDate,omitempty" yaml:"endOfActivityDate,omitempty"`
	PostOfficeCity    string `json:"postOfficeCity,omitempty" yaml:"postOfficeCity,omitempty"`
}

// Entity maps the fields of a DaneSzukajPodmioty record.
// Unknown fields are ignored and missing ones are left empty.
func (r Record) Entity() *Entity {
	return &Entity{
		Regon:             r.Get("Regon"),
		Nip:               r.Get("Nip"),
		StatusNip:         r.Get("StatusNip"),
		Name:              r.Get("Nazwa"),
		Voivodeship:       r.Get("Wojewodztwo"),
		County:            r.Get("Powiat"),
		Commune:           r.Get("Gmina"),
		City:              r.Get("Miejscowosc"),
		PostalCode:        r.Get("KodPocztowy"),
		Street:            r.Get("Ulica"),
		BuildingNumber:    r.Get("NrNieruchomosci"),
		PremisesNumber:    r.Get("NrLokalu"),
		Type:              r.Get("Typ"),
		SilosID:           r.Get("SilosID"),
		EndOfActivityDate: r.Get("DataZakonczeniaDzialalnosci"),
		PostOfficeCity:    r.Get("MiejscowoscPoczty"),
	}
}

// IsLegalPerson reports whether the entity type is P (legal person).
// F marks a natural person running a business.
func (e *Entity) IsLegalPerson() bool {
	return e.Type == "P"
}

// FullReportType returns the main full report for the entity type.
// Natural persons get the general data report.
func (e *Entity) FullReportType() ReportType {
	if e.IsLegalPerson() {
		return ReportLegalPerson
	}
	return ReportNaturalPersonGeneral
}
