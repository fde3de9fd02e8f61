package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/my-movies/internal/config"
	"github.com/MKhiriev/my-movies/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBarcodeClient(t *testing.T, serverURL string) BarcodeClient {
	t.Helper()
	c, err := NewBarcodeClient(config.Adapter{
		BarcodeBaseURL: serverURL,
		BarcodeQueryID: "400000000",
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return c
}

// ── Lookup ──────────────────────────────────────────────────────────────────

func TestBarcode_Lookup_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "5050582721478", q.Get("ean"))
		assert.Equal(t, "query", q.Get("cmd"))
		assert.Equal(t, "400000000", q.Get("queryid"))
		_, _ = w.Write([]byte("error=0\n---\nname=Matrix\ndetailname=The Matrix [Blu-ray]\nvendor=Warner\nmaincat=Film\n---\n"))
	}))
	defer srv.Close()

	c := newTestBarcodeClient(t, srv.URL)
	got, err := c.Lookup(context.Background(), "5050-5827 21478")

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "The Matrix", got.Title)
	assert.Equal(t, "Warner", got.Vendor)
	assert.Equal(t, "Film", got.Category)
}

func TestBarcode_Lookup_Latin1(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// "Die fabelhafte Welt der Amélie" in ISO-8859-1
		_, _ = w.Write([]byte("error=0\nmainname=Die fabelhafte Welt der Am\xe9lie\n"))
	}))
	defer srv.Close()

	c := newTestBarcodeClient(t, srv.URL)
	got, err := c.Lookup(context.Background(), "4006680036555")

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Die fabelhafte Welt der Amélie", got.Title)
}

func TestBarcode_Lookup_Unknown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("error=1\n---\n"))
	}))
	defer srv.Close()

	c := newTestBarcodeClient(t, srv.URL)
	got, err := c.Lookup(context.Background(), "0000000000000")

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBarcode_Lookup_InvalidInput(t *testing.T) {
	c := newTestBarcodeClient(t, "http://127.0.0.1:1")

	_, err := c.Lookup(context.Background(), "abc-")
	require.ErrorIs(t, err, ErrInvalidBarcode)
}

func TestBarcode_Lookup_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestBarcodeClient(t, srv.URL)
	_, err := c.Lookup(context.Background(), "5050582721478")

	require.ErrorIs(t, err, ErrExternalAPI)
}

// ── Parsing ─────────────────────────────────────────────────────────────────

func TestParseBarcodeResponse(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantNil   bool
		wantTitle string
	}{
		{name: "detailname preferred", body: "error=0\nmainname=Inception\ndetailname=Inception (4K UHD)\n", wantTitle: "Inception"},
		{name: "mainname fallback", body: "error=0\nmainname=Heat\ndetailname=\n", wantTitle: "Heat"},
		{name: "first block wins", body: "error=0\ndetailname=Alien\n---\ndetailname=Aliens\n", wantTitle: "Alien"},
		{name: "no title", body: "error=0\nvendor=Sony\n", wantNil: true},
		{name: "garbage", body: "<html>oops</html>", wantNil: true},
		{name: "registry error", body: "error=5\ndetailname=Alien\n", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseBarcodeResponse(tt.body)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantTitle, got.Title)
		})
	}
}

func TestValidateEAN13(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{code: "5050582721478", want: true},
		{code: "5050582721479", want: false},
		{code: "4006680036555", want: false},
		{code: "4006381333931", want: true},
		{code: "123", want: false},
		{code: "505058272147a", want: false},
		{code: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateEAN13(tt.code))
		})
	}
}

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "The Matrix [Blu-ray]", want: "The Matrix"},
		{in: "Inception (4K UHD)", want: "Inception"},
		{in: "Star Wars Steelbook Limited Edition", want: "Star Wars"},
		{in: "Blade Runner - Director's Cut", want: "Blade Runner"},
		{in: "Avatar (3D Blu-ray)  [Collector's Edition]", want: "Avatar"},
		{in: "2001: A Space Odyssey (1968)", want: "2001: A Space Odyssey (1968)"},
		{in: "  Heat   ", want: "Heat"},
		{in: "Uncut Gems", want: "Uncut Gems"},
		{in: "Uncut Gems [Blu-ray]", want: "Uncut Gems"},
		{in: "Step Up 3D Revolution", want: "Step Up 3D Revolution"},
		{in: "The DVD Club Uncut", want: "The DVD Club"},
		{in: "Dune: Part Two 4K UHD + Blu-ray Steelbook", want: "Dune: Part Two"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanTitle(tt.in))
		})
	}
}
