package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	pkgErrors "task-capture/pkg/errors"
)

func TestHTTPError(t *testing.T) {
	err := pkgErrors.NewHTTPError(http.StatusConflict, "already accepted")
	if err.Error() != "already accepted" {
		t.Errorf("Error() = %q", err.Error())
	}

	var target *pkgErrors.HTTPError
	if !errors.As(fmt.Errorf("wrap: %w", err), &target) {
		t.Fatal("expected errors.As to find the HTTPError")
	}
	if target.StatusCode != http.StatusConflict {
		t.Errorf("StatusCode = %d", target.StatusCode)
	}
}
