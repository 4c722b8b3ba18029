package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dusksociety/dsm/pkg/config"
	"github.com/dusksociety/dsm/pkg/decoder"
	"github.com/dusksociety/dsm/pkg/logger"
	"github.com/dusksociety/dsm/pkg/records"
	"github.com/dusksociety/dsm/pkg/validator"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitRequest = 2
)

type cliConfig struct {
	Env         string `env:"DSM_ENV" envDefault:"development"`
	ServiceName string `env:"DSM_SERVICE_NAME" envDefault:"dsmcheck"`
	LogLevel    string `env:"DSM_LOG_LEVEL"`
}

// result is the JSON line written to stdout for every input.
type result struct {
	Source string                     `json:"source"`
	Kind   records.Kind               `json:"kind"`
	Valid  bool                       `json:"valid"`
	Record records.Record             `json:"record,omitempty"`
	Errors validator.ValidationErrors `json:"errors,omitempty"`
	Error  string                     `json:"error,omitempty"`
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("dsmcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	kindFlag := fs.String("kind", "", "record kind: brief, creator, subscriber or work")
	formatFlag := fs.String("format", "", "input format: json or yaml (default: by file extension)")
	envFile := fs.String("env-file", "", "optional .env file to load before reading configuration")
	if err := fs.Parse(args); err != nil {
		return exitRequest
	}

	if *envFile != "" {
		if err := config.LoadEnv(*envFile); err != nil {
			fmt.Fprintln(stderr, err)
			return exitRequest
		}
	}

	var cliCfg cliConfig
	if err := config.Load(&cliCfg); err != nil {
		fmt.Fprintln(stderr, err)
		return exitRequest
	}
	var recCfg records.Config
	if err := config.Load(&recCfg); err != nil {
		fmt.Fprintln(stderr, err)
		return exitRequest
	}

	opts := []logger.Option{
		logger.WithEnvironment(cliCfg.Env, cliCfg.ServiceName),
		logger.WithOutput(stderr),
	}
	if cliCfg.LogLevel != "" {
		level, err := logger.ParseLevel(cliCfg.LogLevel)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitRequest
		}
		opts = append(opts, logger.WithLevel(level))
	}
	log := logger.New(opts...)

	kind, err := records.ParseKind(*kindFlag)
	if err != nil {
		log.Error("invalid kind", logger.Error(err))
		return exitRequest
	}

	var format decoder.Format
	if *formatFlag != "" {
		if format, err = decoder.ParseFormat(*formatFlag); err != nil {
			log.Error("invalid format", logger.Error(err))
			return exitRequest
		}
	}

	c := &checker{
		kind:      kind,
		format:    format,
		validator: records.NewFromConfig(recCfg),
		log:       log,
		out:       json.NewEncoder(stdout),
		stdin:     stdin,
	}

	files := fs.Args()
	if len(files) == 0 {
		files = []string{"-"}
	}

	code := exitOK
	for _, name := range files {
		code = max(code, c.check(name))
	}
	return code
}

type checker struct {
	kind      records.Kind
	format    decoder.Format
	validator *records.Validator
	log       *slog.Logger
	out       *json.Encoder
	stdin     io.Reader
}

func (c *checker) check(name string) int {
	res := result{Source: name, Kind: c.kind}
	if name == "-" {
		res.Source = "stdin"
	}

	in, err := c.decode(name)
	if err == nil {
		res.Record, err = c.validator.Validate(c.kind, in)
	}

	code := exitOK
	switch verrs := validator.ExtractValidationErrors(err); {
	case err == nil:
		res.Valid = true
		c.log.Info("submission valid", logger.Kind(c.kind), logger.Source(res.Source))
	case verrs != nil:
		res.Errors = verrs
		code = exitInvalid
		c.log.Warn("submission rejected",
			logger.Kind(c.kind),
			logger.Source(res.Source),
			logger.Violations(verrs),
		)
	default:
		res.Error = err.Error()
		code = exitRequest
		c.log.Error("invalid request", logger.Kind(c.kind), logger.Source(res.Source), logger.Error(err))
	}

	if err := c.out.Encode(res); err != nil {
		c.log.Error("failed to write result", logger.Source(res.Source), logger.Error(err))
		return exitRequest
	}
	return code
}

func (c *checker) decode(name string) (records.Input, error) {
	format := c.format
	if format == "" {
		format = decoder.Detect(name)
	}

	if name == "-" {
		return decoder.Decode(format, c.stdin)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Join(records.ErrInvalidRequest, err)
	}
	defer f.Close()

	return decoder.Decode(format, f)
}
