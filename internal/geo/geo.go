// Package geo resolves the caller's approximate position from their public IP.
package geo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/lox/skysay/internal/httputil"
	"github.com/lox/skysay/internal/measure"
	"github.com/lox/skysay/internal/metrics"
)

const DefaultURL = "http://ip-api.com/json/"

var ErrLookupFailed = errors.New("geolocation lookup failed")

// Location is where the lookup placed the caller.
type Location struct {
	Coordinates measure.Coordinates
	City        string
	Country     string
}

// Place is "City, Country", or whichever half is known.
func (l Location) Place() string {
	var parts []string
	for _, p := range []string{l.City, l.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

type Client struct {
	url    string
	client *http.Client
	retry  httputil.RetryPolicy
}

func NewClient(url string, client *http.Client, retry httputil.RetryPolicy) *Client {
	if url == "" {
		url = DefaultURL
	}
	if client == nil {
		client = httputil.NewClient(httputil.DefaultTimeout)
	}
	return &Client{url: url, client: client, retry: retry}
}

type lookupResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Country string  `json:"country"`
	City    string  `json:"city"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Locate asks an ip-api.com compatible endpoint where the caller is.
func (c *Client) Locate(ctx context.Context) (Location, error) {
	start := time.Now()
	var resp lookupResponse
	err := httputil.GetJSON(ctx, c.client, c.url+"?fields=status,message,country,city,lat,lon", c.retry, &resp)
	metrics.ProviderLatency.WithLabelValues("ipapi", "locate").Observe(time.Since(start).Seconds())

	if err == nil && resp.Status != "success" {
		err = fmt.Errorf("%w: status %q: %s", ErrLookupFailed, resp.Status, resp.Message)
	}
	if err != nil {
		metrics.ProviderCallsTotal.WithLabelValues("ipapi", "locate", "error").Inc()
		if !errors.Is(err, ErrLookupFailed) {
			err = fmt.Errorf("%w: %w", ErrLookupFailed, err)
		}
		return Location{}, err
	}
	metrics.ProviderCallsTotal.WithLabelValues("ipapi", "locate", "ok").Inc()

	return Location{
		Coordinates: measure.Coordinates{Lat: resp.Lat, Lon: resp.Lon},
		City:        resp.City,
		Country:     resp.Country,
	}, nil
}
