package records

// Config is the environment configuration of a Validator.
type Config struct {
	// URLSchemes lists the schemes accepted for link fields. Empty accepts any scheme.
	URLSchemes []string `env:"DSM_URL_SCHEMES" envDefault:"http,https" envSeparator:","`
}

// NewFromConfig creates a Validator from cfg.
func NewFromConfig(cfg Config) *Validator {
	return New(WithURLSchemes(cfg.URLSchemes...))
}
