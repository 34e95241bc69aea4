package regon

// ReportType names a full report of DanePobierzPelnyRaport
type ReportType string

// Report types accepted by GetReport
const (
	ReportEntityType                ReportType = "BIR11TypPodmiotu"
	ReportLegalPerson               ReportType = "BIR11OsPrawna"
	ReportLegalPersonPKD            ReportType = "BIR11OsPrawnaPkd"
	ReportNaturalPersonGeneral      ReportType = "BIR11OsFizycznaDaneOgolne"
	ReportNaturalPersonCEIDG        ReportType = "BIR11OsFizycznaDzialalnoscCeidg"
	ReportNaturalPersonPKD          ReportType = "BIR11OsFizycznaPkd"
	ReportNaturalPersonAgricultural ReportType = "BIR11OsFizycznaDzialalnoscRolnicza"
	ReportNaturalPersonOther        ReportType = "BIR11OsFizycznaDzialalnoscPozostala"
	ReportNaturalPersonDeregistered ReportType = "BIR11OsFizycznaDzialalnoscSkreslona"
)

var reportTypes = []ReportType{
	ReportEntityType,
	ReportLegalPerson,
	ReportLegalPersonPKD,
	ReportNaturalPersonGeneral,
	ReportNaturalPersonCEIDG,
	ReportNaturalPersonPKD,
	ReportNaturalPersonAgricultural,
	ReportNaturalPersonOther,
	ReportNaturalPersonDeregistered,
}

// ReportTypes returns all accepted report types
func ReportTypes() []ReportType {
	out := make([]ReportType, len(reportTypes))
	copy(out, reportTypes)
	return out
}

// IsPKD reports whether the report lists PKD classification codes.
// PKD reports carry one dane element per code directly under the root.
func (r ReportType) IsPKD() bool {
	return r == ReportLegalPersonPKD || r == ReportNaturalPersonPKD
}

func (r ReportType) String() string {
	return string(r)
}
