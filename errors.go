package docdata_soap

import (
	"fmt"
	"net/http"
)

// HTTPError is returned when Docdata responds with a non-2xx HTTP status
// and no SOAP fault in the body.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       []byte
	Headers    http.Header
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("docdata_soap http error %d (%s): %s", e.StatusCode, e.Status, e.Body)
}

// SOAPFault represents a SOAP fault returned by Docdata.
type SOAPFault struct {
	FaultCode   string
	FaultString string
	RawBody     []byte
}

func (e *SOAPFault) Error() string {
	return fmt.Sprintf("docdata_soap soap fault [%s]: %s", e.FaultCode, e.FaultString)
}

// TransportError reports that an operation did not produce a usable response:
// the endpoint was unreachable, the call timed out, or the payload was malformed.
// Err is one of *HTTPError, *SOAPFault, or the underlying network/decode error.
// Operations are never retried.
type TransportError struct {
	Op  Operation
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("docdata_soap %s: transport: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// OperationError is returned when Docdata answers with the error outcome of an
// operation. Explanation is the service-supplied text, verbatim.
type OperationError struct {
	Op          Operation
	Code        string
	Explanation string
}

func (e *OperationError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("docdata_soap %s: %s", e.Op, e.Explanation)
	}
	return fmt.Sprintf("docdata_soap %s [%s]: %s", e.Op, e.Code, e.Explanation)
}

// ConfigError reports invalid client configuration.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("docdata_soap: %s %s", e.Field, e.Reason)
}
