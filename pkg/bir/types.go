package bir

import (
	"context"
)

// Namespace constants for BIR 1.1
const (
	NsSOAP12       = "http://www.w3.org/2003/05/soap-envelope"
	NsAddressing   = "http://www.w3.org/2005/08/addressing"
	NsBIR          = "http://CIS/BIR/PUBL/2014/07"
	NsDataContract = "http://CIS/BIR/PUBL/2014/07/DataContract"
)

// SessionHeader is the HTTP header carrying the session id on non-login calls
const SessionHeader = "sid"

// Action is a SOAP action URI
type Action string

// BIR 1.1 action URIs
const (
	ActionLogin      Action = "http://CIS/BIR/PUBL/2014/07/IUslugaBIRzewnPubl/Zaloguj"
	ActionSearch     Action = "http://CIS/BIR/PUBL/2014/07/IUslugaBIRzewnPubl/DaneSzukajPodmioty"
	ActionFullReport Action = "http://CIS/BIR/PUBL/2014/07/IUslugaBIRzewnPubl/DanePobierzPelnyRaport"
)

// Operation returns the operation name, the last path segment of the URI
func (a Action) Operation() string {
	s := string(a)
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '/' {
			return s[i+1:]
		}
	}
	return s
}

// SearchKey names the search parameter element
type SearchKey string

// Search parameter elements of pParametryWyszukiwania
const (
	SearchByRegon SearchKey = "Regon"
	SearchByNip   SearchKey = "Nip"
)

// LoginRequest holds the Zaloguj parameters
type LoginRequest struct {
	ClientKey string
}

// LoginResponse holds the Zaloguj result
type LoginResponse struct {
	SessionID string
}

// SearchRequest holds the DaneSzukajPodmioty parameters
type SearchRequest struct {
	Key   SearchKey
	Value string
}

// SearchResponse holds the DaneSzukajPodmioty result.
// Data is the embedded XML document, already unescaped.
type SearchResponse struct {
	Data string
}

// ReportRequest holds the DanePobierzPelnyRaport parameters
type ReportRequest struct {
	Regon      string
	ReportName string
}

// ReportResponse holds the DanePobierzPelnyRaport result
type ReportResponse struct {
	Data string
}

// Service is the BIR protocol surface used by the registry client.
// Login is called without a session; the other operations require one.
type Service interface {
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
	Search(ctx context.Context, sessionID string, req *SearchRequest) (*SearchResponse, error)
	FullReport(ctx context.Context, sessionID string, req *ReportRequest) (*ReportResponse, error)
}
