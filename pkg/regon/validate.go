package regon

import "regexp"

var (
	regonPattern = regexp.MustCompile(`^(\d{9}|\d{14})$`)
	nipPattern   = regexp.MustCompile(`^\d{10}$`)
)

// ValidateRegon accepts exactly 9 or 14 ASCII digits
func ValidateRegon(regon string) error {
	if !regonPattern.MatchString(regon) {
		return &InvalidArgumentError{Kind: "REGON", Value: regon}
	}
	return nil
}

// ValidateNip accepts exactly 10 ASCII digits
func ValidateNip(nip string) error {
	if !nipPattern.MatchString(nip) {
		return &InvalidArgumentError{Kind: "NIP", Value: nip}
	}
	return nil
}

// ValidateReportType accepts only the names returned by ReportTypes.
// Matching is case-sensitive.
func ValidateReportType(reportType string) error {
	for _, r := range reportTypes {
		if string(r) == reportType {
			return nil
		}
	}
	return &InvalidArgumentError{Kind: "report type", Value: reportType}
}
