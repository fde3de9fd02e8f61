package config

import "time"

// Default values of every optional setting.
const (
	DefaultDSN                       = "data/my-movies.db"
	DefaultHost                      = "0.0.0.0"
	DefaultPort                      = 3000
	DefaultBaseURL                   = "http://localhost:3000"
	DefaultUploadsDir                = "uploads/posters"
	DefaultTokenIssuer               = "my-movies"
	DefaultTokenDuration             = 7 * 24 * time.Hour
	DefaultMaxConnections            = 5
	DefaultAcquireTimeout            = 3 * time.Second
	DefaultRequestTimeout            = 30 * time.Second
	DefaultAuthRateLimit             = 30
	DefaultTMDBBaseURL               = "https://api.themoviedb.org/3"
	DefaultBarcodeBaseURL            = "https://opengtindb.org/"
	DefaultBarcodeQueryID            = "400000000"
	DefaultAdapterRequestTimeout     = 15 * time.Second
	DefaultLanguage                  = "de-DE"
	DefaultEnrichInterval            = 250 * time.Millisecond
	DefaultResetTokenCleanupSchedule = "@every 15m"
)

// Defaults returns a config holding the default of every optional field.
// JWTSecret has no default.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			BaseURL:       DefaultBaseURL,
			UploadsDir:    DefaultUploadsDir,
		},
		Storage: Storage{
			DB: DB{
				DSN:            DefaultDSN,
				MaxConnections: DefaultMaxConnections,
				AcquireTimeout: DefaultAcquireTimeout,
			},
		},
		Server: Server{
			Host:           DefaultHost,
			Port:           DefaultPort,
			RequestTimeout: DefaultRequestTimeout,
			AuthRateLimit:  DefaultAuthRateLimit,
		},
		Adapter: Adapter{
			TMDBBaseURL:     DefaultTMDBBaseURL,
			BarcodeBaseURL:  DefaultBarcodeBaseURL,
			BarcodeQueryID:  DefaultBarcodeQueryID,
			RequestTimeout:  DefaultAdapterRequestTimeout,
			DefaultLanguage: DefaultLanguage,
		},
		Workers: Workers{
			EnrichInterval:            DefaultEnrichInterval,
			ResetTokenCleanupSchedule: DefaultResetTokenCleanupSchedule,
		},
	}
}
