// internal/printify/errors.go
package printify

import (
	"errors"
	"fmt"
)

// ErrNoCredential is a precondition violation: callers must check the
// configuration before invoking the client. It never reaches the network.
var ErrNoCredential = errors.New("printify: API key not configured")

// ProviderError is a non-2xx response or transport failure from Printify.
// StatusCode is zero when the request never produced a response.
type ProviderError struct {
	StatusCode int
	Endpoint   string
	Message    string
}

func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("printify: %s: status %d: %s", e.Endpoint, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("printify: %s: %s", e.Endpoint, e.Message)
}

// ResolutionError means the shop id could not be determined. Whether that
// is masked with mock data is the orchestrator's decision, not this
// package's.
type ResolutionError struct {
	Cause error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("printify: shop resolution failed: %v", e.Cause)
}

func (e *ResolutionError) Unwrap() error { return e.Cause }
