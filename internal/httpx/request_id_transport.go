package httpx

import (
	"net/http"

	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-Id"

// RequestIDTransport stamps every outbound request with an X-Request-Id,
// reusing the one in the request context when present.
func RequestIDTransport(next http.RoundTripper) http.RoundTripper {
	return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = RequestIDFromContext(r.Context())
		}
		if requestID == "" {
			requestID = uuid.New().String()
		}

		r = r.Clone(ContextWithRequestID(r.Context(), requestID))
		r.Header.Set(RequestIDHeader, requestID)
		return next.RoundTrip(r)
	})
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}
