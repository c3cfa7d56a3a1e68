package signing

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTransport(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantErr  string
		wantBody string
	}{
		{
			name:     "success passes through",
			status:   http.StatusOK,
			body:     `{"data":{"signMessage":"sig"}}`,
			wantBody: `{"data":{"signMessage":"sig"}}`,
		},
		{
			name:     "graphql errors restored for decoding",
			status:   http.StatusUnprocessableEntity,
			body:     `{"errors":[{"message":"bad auth"}]}`,
			wantBody: `{"errors":[{"message":"bad auth"}]}`,
		},
		{
			name:    "json without errors is rejected",
			status:  http.StatusServiceUnavailable,
			body:    `{"message":"maintenance"}`,
			wantErr: `server returned 503 Service Unavailable: {"message":"maintenance"}`,
		},
		{
			name:    "long body is truncated",
			status:  http.StatusInternalServerError,
			body:    strings.Repeat("x", 1000),
			wantErr: "server returned 500 Internal Server Error: " + strings.Repeat("x", maxErrorText-3) + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			t.Cleanup(srv.Close)

			req, err := http.NewRequest(http.MethodPost, srv.URL, nil)
			require.NoError(t, err)

			resp, err := newStatusTransport(nil).RoundTrip(req)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Nil(t, resp)
				assert.EqualError(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.status, resp.StatusCode)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tt.wantBody, string(body))
		})
	}
}
