package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/hamed0406/healthpoint/internal/domain"
)

var (
	ErrNoEndpoints = errors.New("no endpoints configured")
	ErrMissingURL  = errors.New("url is required")
	ErrInvalidURL  = errors.New("url must be absolute")
)

// LoadEndpoints reads a YAML list of endpoints from path.
func LoadEndpoints(path string) ([]domain.Endpoint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}
	return ParseEndpoints(data)
}

// ParseEndpoints decodes and validates endpoints, applying defaults.
// Every invalid entry is reported, not just the first.
func ParseEndpoints(data []byte) ([]domain.Endpoint, error) {
	var eps []domain.Endpoint
	if err := yaml.Unmarshal(data, &eps); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if len(eps) == 0 {
		return nil, ErrNoEndpoints
	}

	var errs error
	for i := range eps {
		ep := &eps[i]
		if ep.Name == "" {
			ep.Name = domain.DefaultName
		}
		if ep.Headers == nil {
			ep.Headers = map[string]string{}
		}
		if err := validateURL(ep.URL); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("endpoint %d (%s): %w", i, ep.Name, err))
		}
	}
	if errs != nil {
		return nil, errs
	}
	return eps, nil
}

func validateURL(raw string) error {
	if raw == "" {
		return ErrMissingURL
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}
	return nil
}
