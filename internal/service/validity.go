package service

import (
	"strconv"
	"strings"

	"recharge_system/internal/apperr"
)

// ParseValidityDays extracts the day count from a plan validity string. The
// leading whitespace-separated token is the authoritative integer, e.g.
// "30 days" -> 30. This is the cross-component contract between the plan
// catalog and the recharge flow; the catalog checks it at write time and the
// recharge flow re-checks it, since rows written before the check existed
// can still carry arbitrary text.
func ParseValidityDays(validity string) (int, error) {
	fields := strings.Fields(validity)
	if len(fields) == 0 {
		return 0, apperr.Validationf("invalid plan validity %q: day count missing", validity)
	}
	days, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, apperr.Validationf("invalid plan validity %q: leading token must be a day count", validity)
	}
	return days, nil
}
