package httpx

import (
	"fmt"
	"net/http"
)

// HeaderAuthRoundTripper sets fixed authentication headers on every request,
// e.g. the Client-Id/Api-Key pair of the Ozon seller API.
type HeaderAuthRoundTripper struct {
	next    http.RoundTripper
	headers map[string]string
}

func NewHeaderAuthRoundTripper(next http.RoundTripper, headers map[string]string) HeaderAuthRoundTripper {
	return HeaderAuthRoundTripper{
		next:    next,
		headers: headers,
	}
}

func (rt HeaderAuthRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	for name, value := range rt.headers {
		req.Header.Set(name, value)
	}

	resp, err := rt.next.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	return resp, nil
}
