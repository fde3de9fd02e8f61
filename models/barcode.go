package models

// BarcodeProduct is a product found in the barcode registry.
type BarcodeProduct struct {
	Title    string `json:"title"`
	Vendor   string `json:"vendor,omitempty"`
	Category string `json:"category,omitempty"`
}

// ScanRequest is the payload of POST /scan.
type ScanRequest struct {
	Barcode string `json:"barcode" validate:"required,max=32"`
}

// ScanResult is the response of POST /scan.
type ScanResult struct {
	Barcode  string `json:"barcode"`
	Title    string `json:"title"`
	Vendor   string `json:"vendor,omitempty"`
	Category string `json:"category,omitempty"`
	// ValidEAN13 is false for UPC-A codes and for EANs with a bad check digit;
	// the lookup runs either way.
	ValidEAN13  bool              `json:"valid_ean13"`
	TMDBResults []TMDBMovieResult `json:"tmdb_results"`
}
