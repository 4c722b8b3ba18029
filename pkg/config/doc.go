// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` (optional .env files) and
// `github.com/caarlos0/env/v11` (struct tag parsing). Each configuration type
// is parsed once and cached for the lifetime of the process:
//
//	var cfg records.Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//	v := records.NewFromConfig(cfg)
//
// Errors can be checked with errors.Is against ErrParsingConfig,
// ErrLoadingEnvFile and ErrNilPointer. Tests that change the environment
// between loads should call Reset.
package config
