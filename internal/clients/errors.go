package clients

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrServiceUnreachable wraps transport-level failures: connection refused,
// DNS, timeouts. Distinct from ServiceError, which means the service answered
// and said no.
var ErrServiceUnreachable = errors.New("upstream service unreachable")

// ServiceError is a non-2xx answer from an upstream service. Detail carries
// the FastAPI-style human-readable detail string verbatim so pages can render
// the server's own words.
type ServiceError struct {
	StatusCode int
	Detail     string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.StatusCode, e.Detail)
}

// AsServiceError unwraps err into a *ServiceError if there is one.
func AsServiceError(err error) (*ServiceError, bool) {
	var se *ServiceError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

func parseServiceError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(data, &payload); err != nil || payload.Detail == "" {
		payload.Detail = strings.TrimSpace(string(data))
	}
	return &ServiceError{StatusCode: resp.StatusCode, Detail: payload.Detail}
}
