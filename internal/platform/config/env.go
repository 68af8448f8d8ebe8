// Package config loads command configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/hashicorp/go-multierror"
	apperrors "github.com/louisbranch/chance/internal/platform/errors"
)

// ParseEnv loads configuration from environment variables.
//
// Every variable that fails to parse becomes its own InvalidOption error
// named after the variable, so WriteError prints one line per bad value.
func ParseEnv(target any) error {
	err := env.Parse(target)
	if err == nil {
		return nil
	}
	var agg env.AggregateError
	if !errors.As(err, &agg) {
		return fmt.Errorf("parse env: %w", err)
	}

	var result *multierror.Error
	for _, e := range agg.Errors {
		var parseErr env.ParseError
		if !errors.As(e, &parseErr) {
			return fmt.Errorf("parse env: %w", err)
		}
		key := envKey(target, parseErr.Name)
		result = multierror.Append(result, apperrors.WrapWithMetadata(
			apperrors.CodeInvalidOption,
			fmt.Sprintf("parse env %s: %v", key, parseErr.Err),
			map[string]string{
				"Option": key,
				"Reason": "expected " + parseErr.Type.String(),
			},
			parseErr.Err,
		))
	}
	return result.ErrorOrNil()
}

// envKey returns the variable bound to field, or field when it has none.
func envKey(target any, field string) string {
	t := reflect.TypeOf(target)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return field
	}
	f, ok := t.FieldByName(field)
	if !ok {
		return field
	}
	if key, _, _ := strings.Cut(f.Tag.Get("env"), ","); key != "" {
		return key
	}
	return field
}
