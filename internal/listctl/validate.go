package listctl

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
)

var (
	fourLettersRe = regexp.MustCompile(`^[A-Z]{4}$`)
	rackNumberRe  = regexp.MustCompile(`^\d{2}$`)
	rackLevelRe   = regexp.MustCompile(`^[ABCD]$`)
)

// NormalizeCode trims and upper-cases a business code.
func NormalizeCode(s string) string { return strings.ToUpper(strings.TrimSpace(s)) }

// IsGroupCode reports whether s is exactly four upper-case letters.
func IsGroupCode(s string) bool { return fourLettersRe.MatchString(s) }

// IsBinCode uses the same rule as IsGroupCode.
func IsBinCode(s string) bool { return fourLettersRe.MatchString(s) }

func IsRackNumber(s string) bool { return rackNumberRe.MatchString(s) }

// IsRackLevel accepts A, B, C or D in either case.
func IsRackLevel(s string) bool { return rackLevelRe.MatchString(strings.ToUpper(s)) }

// Invalid builds an error wrapping model.ErrValidation.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", model.ErrValidation, fmt.Sprintf(format, args...))
}

// Required returns a validation error for the first empty value.
// Pairs are given as name, value, name, value...
func Required(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			return Invalid("%s is required", pairs[i])
		}
	}
	return nil
}
