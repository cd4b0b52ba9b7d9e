package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/doeshing/check-cdap/internal/domain"
)

var validate = validator.New()

// Validate ensures the effective configuration can drive a check. Failures
// are reported as domain sentinel errors so callers can match with errors.Is.
func Validate(cfg domain.Config) error {
	cfg.URI = strings.TrimSpace(cfg.URI)
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	// Report the first failure only; the plugin prints a single line.
	fe := fieldErrs[0]
	switch fe.Field() {
	case "URI":
		if fe.Tag() == "required" {
			return domain.ErrMissingURI
		}
		return fmt.Errorf("%w: %q", domain.ErrInvalidURI, cfg.URI)
	case "TimeoutSeconds":
		return fmt.Errorf("%w: %d", domain.ErrInvalidTimeout, cfg.TimeoutSeconds)
	default:
		return fmt.Errorf("config.%s failed %s validation", fe.Field(), fe.Tag())
	}
}
