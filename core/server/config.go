package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitMB caps the accepted request body size in megabytes.
	// Reconcile requests carry full datasets inline, so this runs well
	// above the Fiber default.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"64"`
}

const defaultBodyLimitMB = 64

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	return ":" + c.Port
}

// BodyLimitBytes returns the request body cap in bytes, falling back to the
// default when the configured value is unusable.
func (c Config) BodyLimitBytes() int {
	mb := c.BodyLimitMB
	if mb <= 0 {
		mb = defaultBodyLimitMB
	}
	return mb * 1024 * 1024
}
