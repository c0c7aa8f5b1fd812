package httpx

import (
	"fmt"
	"net/http"
)

// StaticBearerRoundTripper sets a long-lived bearer token on every request.
// Marketplace partner tokens do not expire mid-run, so there is no refresh flow.
type StaticBearerRoundTripper struct {
	next  http.RoundTripper
	token string
}

func NewStaticBearerRoundTripper(next http.RoundTripper, token string) StaticBearerRoundTripper {
	return StaticBearerRoundTripper{
		next:  next,
		token: token,
	}
}

func (rt StaticBearerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Bearer "+rt.token)

	resp, err := rt.next.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	return resp, nil
}
