package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel error kinds. Every failure surfaced to the CLI is tagged with
// exactly one of these so the entrypoint can map it to an exit code.
var (
	ErrInputNotFound  = errors.New("input not found")
	ErrOutputConflict = errors.New("output conflict")
	ErrDecode         = errors.New("decode error")
	ErrParse          = errors.New("parse error")
	ErrSchema         = errors.New("schema error")
	ErrValidation     = errors.New("validation error")
	ErrVerifyFailed   = errors.New("verification failed")
)

// Exit codes reported by the CLI.
const (
	ExitOK     = 0
	ExitVerify = 1
	ExitUsage  = 2
)

// Wrap builds an error message that includes operation context while tagging
// it with the provided marker for later exit-code classification. The marker
// should be one of the exported sentinel errors above.
func Wrap(marker error, operation, message string, err error) error {
	detail := buildDetail(operation, message)
	if marker == nil {
		marker = ErrParse
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// ExitCode maps an error to the process exit code the CLI should report.
// A failed round-trip verification exits 1; every other classified error is
// a user or input problem and exits 2.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrVerifyFailed):
		return ExitVerify
	default:
		return ExitUsage
	}
}

func buildDetail(operation, message string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "conversion failure"
	}
	return strings.Join(parts, ": ")
}
