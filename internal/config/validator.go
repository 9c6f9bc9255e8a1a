package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/aleister1102/hlsprobe/internal/common"
	"github.com/go-playground/validator/v10"
)

var jsIdentifierRegex = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// resourceTypes lists the CDP Network.ResourceType values accepted for blocking.
var resourceTypes = map[string]struct{}{
	"Document": {}, "Stylesheet": {}, "Image": {}, "Media": {}, "Font": {},
	"Script": {}, "TextTrack": {}, "XHR": {}, "Fetch": {}, "Prefetch": {},
	"EventSource": {}, "WebSocket": {}, "Manifest": {}, "SignedExchange": {},
	"Ping": {}, "CSPViolationReport": {}, "Preflight": {}, "Other": {},
}

// newValidator builds a validator with the custom tags used by the config structs.
func newValidator() *validator.Validate {
	validate := validator.New()

	_ = validate.RegisterValidation("fileexists", func(fl validator.FieldLevel) bool {
		filePath := fl.Field().String()
		if filePath == "" {
			return true
		}
		_, err := os.Stat(filePath)
		return !os.IsNotExist(err)
	})

	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
			return true
		default:
			return false
		}
	})

	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "console", "text", "json":
			return true
		default:
			return false
		}
	})

	_ = validate.RegisterValidation("listenaddr", func(fl validator.FieldLevel) bool {
		_, port, err := net.SplitHostPort(fl.Field().String())
		if err != nil {
			return false
		}
		n, err := strconv.Atoi(port)
		return err == nil && n >= 0 && n <= 65535
	})

	_ = validate.RegisterValidation("jsident", func(fl validator.FieldLevel) bool {
		return jsIdentifierRegex.MatchString(fl.Field().String())
	})

	_ = validate.RegisterValidation("resourcetype", func(fl validator.FieldLevel) bool {
		_, ok := resourceTypes[fl.Field().String()]
		return ok
	})

	return validate
}

// ValidateConfig performs validation on the GlobalConfig structure. Every
// failed rule becomes a common.ConfigurationError; several are joined.
func ValidateConfig(cfg *GlobalConfig) error {
	if cfg == nil {
		return common.NewConfigurationError("", "", "configuration is nil")
	}

	err := newValidator().Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return common.NewConfigurationError("", "", err.Error())
	}

	configErrs := make([]error, 0, len(fieldErrs))
	for _, e := range fieldErrs {
		configErrs = append(configErrs, configurationError(e))
	}
	return errors.Join(configErrs...)
}

// configurationError maps GlobalConfig.<Section>.<Field> onto a ConfigurationError.
func configurationError(e validator.FieldError) *common.ConfigurationError {
	section, field := "", e.Field()
	if parts := strings.Split(e.Namespace(), "."); len(parts) >= 3 {
		section = parts[1]
		field = strings.Join(parts[2:], ".")
	}

	reason := fmt.Sprintf("rule '%s'", e.Tag())
	if e.Param() != "" {
		reason += fmt.Sprintf(" (expected: %s)", e.Param())
	}
	if e.Value() != nil && e.Value() != "" {
		reason += fmt.Sprintf(", actual: '%v'", e.Value())
	}
	return common.NewConfigurationError(section, field, reason)
}
