package bir

import (
	"errors"
	"fmt"
)

// Fault codes for failures that did not come from a SOAP Fault element
const (
	FaultCodeHTTP   = "HTTP"
	FaultCodeClient = "Client"
)

// Fault is a SOAP fault or a transport failure of a single call
type Fault struct {
	Code   string
	Reason string
	Detail string
	Err    error
}

func (f *Fault) Error() string {
	if f.Code == "" {
		return f.Reason
	}
	return fmt.Sprintf("%s: %s", f.Code, f.Reason)
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// GetFault extracts a *Fault from an error chain
func GetFault(err error) (*Fault, bool) {
	var f *Fault
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}
