package lambdapi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvent_RouteTarget(t *testing.T) {
	tests := []struct {
		name       string
		payload    string
		wantMethod string
		wantPath   string
		wantErr    bool
	}{
		{
			name:       "http api shape",
			payload:    `{"requestContext": {"http": {"method": "GET", "path": "/"}}}`,
			wantMethod: "GET",
			wantPath:   "/",
		},
		{
			name:       "legacy rest api shape",
			payload:    `{"requestContext": {"httpMethod": "POST", "path": "/x"}}`,
			wantMethod: "POST",
			wantPath:   "/x",
		},
		{
			name:    "unsupported shape",
			payload: `{"requestContext": {"requestId": "id"}}`,
			wantErr: true,
		},
		{
			name:    "no request context",
			payload: `{"Records": []}`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := ParseEvent([]byte(tt.payload))
			require.NoError(t, err)
			method, path, err := event.RouteTarget()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantMethod, method)
			require.Equal(t, tt.wantPath, path)
		})
	}
}

func TestParseEvent_Malformed(t *testing.T) {
	_, err := ParseEvent([]byte("not json"))
	require.Error(t, err)
}

func TestParseEvent_RetainsRawMapping(t *testing.T) {
	event, err := ParseEvent([]byte(`{"requestContext": {"http": {"method": "GET", "path": "/"}}, "extra": 1}`))
	require.NoError(t, err)
	require.Contains(t, event.Raw(), "extra")
	require.Contains(t, event.Raw(), "requestContext")
}
