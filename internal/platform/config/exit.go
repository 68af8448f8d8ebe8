package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	apperrors "github.com/louisbranch/chance/internal/platform/errors"
)

// ExitError writes the localized err to stderr and exits with code.
// It provides a consistent fatal-exit pattern for CLI entry points.
func ExitError(err error, locale string, code int) {
	WriteError(os.Stderr, err, locale)
	os.Exit(code)
}

// WriteError writes the localized message for err to w, one line per
// error when err aggregates several.
func WriteError(w io.Writer, err error, locale string) {
	if err == nil {
		return
	}
	var merr *multierror.Error
	if errors.As(err, &merr) {
		for _, e := range merr.Errors {
			fmt.Fprintf(w, "error: %s\n", apperrors.Localize(e, locale))
		}
		return
	}
	fmt.Fprintf(w, "error: %s\n", apperrors.Localize(err, locale))
}
