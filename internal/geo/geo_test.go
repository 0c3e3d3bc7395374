package geo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/skysay/internal/httputil"
	"github.com/lox/skysay/internal/measure"
)

var fastRetry = httputil.RetryPolicy{InitialInterval: time.Millisecond, MaxElapsedTime: 10 * time.Millisecond}

func serve(t *testing.T, status int, body string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Query().Get("fields"), "lat")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestLocate(t *testing.T) {
	url := serve(t, http.StatusOK, `{"status":"success","country":"Germany","city":"Berlin","lat":52.52,"lon":13.405}`)

	loc, err := NewClient(url, nil, fastRetry).Locate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, measure.Coordinates{Lat: 52.52, Lon: 13.405}, loc.Coordinates)
	assert.Equal(t, "Berlin, Germany", loc.Place())
}

func TestLocateFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"reserved range", http.StatusOK, `{"status":"fail","message":"reserved range"}`},
		{"server error", http.StatusBadGateway, `oops`},
		{"forbidden", http.StatusForbidden, `no`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(serve(t, tt.status, tt.body), nil, fastRetry).Locate(context.Background())
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrLookupFailed))
		})
	}
}

func TestPlace(t *testing.T) {
	assert.Equal(t, "Norway", Location{Country: "Norway"}.Place())
	assert.Equal(t, "", Location{}.Place())
}
