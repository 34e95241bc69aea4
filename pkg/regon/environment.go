package regon

import "fmt"

// Environment selects the BIR installation a client talks to
type Environment int

const (
	// Test is the public test installation
	Test Environment = iota
	// Production is the production installation
	Production
)

// TestClientKey is the publicly known key accepted by the test installation
const TestClientKey = "abcde12345abcde12345"

// Endpoints holds the two locations configured per environment
type Endpoints struct {
	WSDL    string `yaml:"wsdl"`
	Service string `yaml:"service"`
}

// Both environments point at the same published service.
var defaultEndpoints = map[Environment]Endpoints{
	Production: {
		WSDL:    "https://wyszukiwarkaregon.stat.gov.pl/wsBIR/wsdl/UslugaBIRzewnPubl-ver11-prod.wsdl",
		Service: "https://wyszukiwarkaregon.stat.gov.pl/wsBIR/UslugaBIRzewnPubl.svc",
	},
	Test: {
		WSDL:    "https://wyszukiwarkaregon.stat.gov.pl/wsBIR/wsdl/UslugaBIRzewnPubl-ver11-prod.wsdl",
		Service: "https://wyszukiwarkaregon.stat.gov.pl/wsBIR/UslugaBIRzewnPubl.svc",
	},
}

// DefaultEndpoints returns the published endpoints of an environment
func DefaultEndpoints(env Environment) Endpoints {
	return defaultEndpoints[env]
}

func (e Environment) String() string {
	switch e {
	case Production:
		return "production"
	case Test:
		return "test"
	default:
		return fmt.Sprintf("Environment(%d)", int(e))
	}
}

// ParseEnvironment converts "production" or "test" to an Environment
func ParseEnvironment(s string) (Environment, error) {
	switch s {
	case "production":
		return Production, nil
	case "test":
		return Test, nil
	default:
		return Test, &InvalidArgumentError{Kind: "environment", Value: s}
	}
}
