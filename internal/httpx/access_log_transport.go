package httpx

import (
	"log"
	"net/http"
	"time"
)

// AccessLogTransport logs one line per outbound request.
func AccessLogTransport(next http.RoundTripper) http.RoundTripper {
	return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		start := time.Now()

		resp, err := next.RoundTrip(r)

		duration := time.Since(start)
		requestID := RequestIDFromContext(r.Context())
		if err != nil {
			log.Printf("access method=%s url=%s error=%q duration_ms=%d request_id=%s",
				r.Method,
				r.URL.Redacted(),
				err.Error(),
				duration.Milliseconds(),
				requestID,
			)
			return nil, err
		}

		log.Printf("access method=%s url=%s status=%d duration_ms=%d request_id=%s",
			r.Method,
			r.URL.Redacted(),
			resp.StatusCode,
			duration.Milliseconds(),
			requestID,
		)
		return resp, nil
	})
}

// NewTransport wraps base (http.DefaultTransport when nil) with request IDs
// and access logging.
func NewTransport(base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return RequestIDTransport(AccessLogTransport(base))
}
