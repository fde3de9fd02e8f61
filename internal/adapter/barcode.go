package adapter

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/my-movies/internal/config"
	"github.com/MKhiriev/my-movies/internal/logger"
	"github.com/MKhiriev/my-movies/internal/utils"
	"github.com/MKhiriev/my-movies/models"
	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/text/encoding/charmap"
)

type barcodeClient struct {
	client  *utils.HTTPClient
	cb      *gobreaker.CircuitBreaker[*resty.Response]
	queryID string

	logger *logger.Logger
}

// NewBarcodeClient constructs a [BarcodeClient] for the open barcode
// registry at cfg.BarcodeBaseURL.
func NewBarcodeClient(cfg config.Adapter, log *logger.Logger) (BarcodeClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BarcodeBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid barcode base url: %w", err)
	}

	return &barcodeClient{
		client:  utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		cb:      newBreaker("barcode", log),
		queryID: cfg.BarcodeQueryID,
		logger:  log,
	}, nil
}

// Lookup implements [BarcodeClient].
func (b *barcodeClient) Lookup(ctx context.Context, barcode string) (*models.BarcodeProduct, error) {
	ean := DigitsOnly(barcode)
	if ean == "" {
		return nil, ErrInvalidBarcode
	}

	resp, err := execute(b.cb, func() (*resty.Response, error) {
		resp, err := b.client.R().
			SetContext(ctx).
			SetQueryParam("ean", ean).
			SetQueryParam("cmd", "query").
			SetQueryParam("queryid", b.queryID).
			Get("/")
		if err != nil {
			return nil, mapTransportError("barcode lookup", err)
		}
		return resp, mapHTTPError(resp)
	})
	if err != nil {
		b.logger.Debug().Err(err).Str("func", "*barcodeClient.Lookup").Str("ean", ean).Msg("barcode lookup failed")
		return nil, err
	}

	return parseBarcodeResponse(decodeLatin1(resp.Body())), nil
}

// DigitsOnly drops every character that is not an ASCII digit.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// decodeLatin1 converts an ISO-8859-1 body to UTF-8. Bodies that already
// are valid UTF-8 are returned unchanged.
func decodeLatin1(body []byte) string {
	if utf8.Valid(body) {
		return string(body)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(body)
	if err != nil {
		return string(body)
	}
	return string(decoded)
}

// parseBarcodeResponse reads the registry's key=value block. It returns nil
// when the registry reports an error or the block carries no usable title.
func parseBarcodeResponse(body string) *models.BarcodeProduct {
	fields := make(map[string]string)

	scanner := bufio.NewScanner(bytes.NewBufferString(body))
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), "=")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		// first product block wins
		if _, seen := fields[key]; seen || value == "" {
			continue
		}
		fields[key] = value
	}

	if code, ok := fields["error"]; ok && code != "0" {
		return nil
	}

	title := fields["detailname"]
	if title == "" {
		title = fields["mainname"]
	}
	if title == "" {
		title = fields["name"]
	}
	title = CleanTitle(title)
	if title == "" {
		return nil
	}

	category := fields["category"]
	if category == "" {
		category = fields["maincat"]
	}

	return &models.BarcodeProduct{
		Title:    title,
		Vendor:   fields["vendor"],
		Category: category,
	}
}

// ValidateEAN13 reports whether code is 13 digits with a valid check digit.
func ValidateEAN13(code string) bool {
	if len(code) != 13 {
		return false
	}

	sum := 0
	for i := 0; i < 13; i++ {
		c := code[i]
		if c < '0' || c > '9' {
			return false
		}
		if i == 12 {
			break
		}
		d := int(c - '0')
		if i%2 == 1 {
			d *= 3
		}
		sum += d
	}

	check := (10 - sum%10) % 10
	return int(code[12]-'0') == check
}
