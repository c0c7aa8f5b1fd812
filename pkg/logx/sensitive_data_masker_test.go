package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"marketsync/pkg/logx"
)

func TestSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	masker := logx.NewSensitiveDataMasker()

	testCases := []struct {
		name   string
		input  []byte
		output []byte
	}{
		{
			name:   "Password",
			input:  []byte(`{"hello":"world","password":"abc123"}`),
			output: []byte(`{"hello":"world","password":"[MASKED]"}`),
		},
		{
			name:   "Bearer token header",
			input:  []byte("GET /campaigns/1/offers HTTP/1.1\r\nAuthorization: Bearer y0_AgAAAAB\r\nAccept: application/json\r\n"),
			output: []byte("GET /campaigns/1/offers HTTP/1.1\r\nAuthorization: Bearer [MASKED]\r\nAccept: application/json\r\n"),
		},
		{
			name:   "Seller API key headers",
			input:  []byte("POST /v1/product/import/stocks HTTP/1.1\r\nClient-Id: 112233\r\nApi-Key: c61438d8-a0e2\r\n"),
			output: []byte("POST /v1/product/import/stocks HTTP/1.1\r\nClient-Id: [MASKED]\r\nApi-Key: [MASKED]\r\n"),
		},
		{
			name:   "Access token",
			input:  []byte(`{"accessToken":"eyJhbGciOiJFUzI1NiIsInR5cC","refreshToken":"eyJhbGciOiJFUzI1NiIsInR5cCI6IkpXVCJ9"}`),
			output: []byte(`{"accessToken":"[MASKED]","refreshToken":"[MASKED]"}`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			output := masker.Mask(tc.input)

			rq.Equal(tc.output, output, "%s vs %s", tc.output, output)
		})
	}
}
