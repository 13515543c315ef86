package roleconfig

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Validate checks a raw EOD report against the role catalog. Field checks
// run for every field; cross-field rules run only on a numerically clean
// report, in order, and stop at the first failure. The returned map is
// empty when the report is acceptable.
func (rc RoleConfig) Validate(date string, raw map[string]string) (Metrics, map[string]string) {
	errs := make(map[string]string)

	if strings.TrimSpace(date) == "" {
		errs["date"] = "Date is required"
	}

	metrics := make(Metrics, len(rc.Fields))
	fieldErrs := false
	for _, f := range rc.Fields {
		value, ok := raw[f.Name]
		if !ok || strings.TrimSpace(value) == "" {
			errs[f.Name] = fmt.Sprintf("%s is required", f.Label)
			fieldErrs = true
			continue
		}

		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			errs[f.Name] = fmt.Sprintf("%s must be a number", f.Label)
			fieldErrs = true
			continue
		}
		if parsed < 0 {
			errs[f.Name] = fmt.Sprintf("%s cannot be negative", f.Label)
			fieldErrs = true
			continue
		}

		metrics[f.Name] = parsed
	}

	if !fieldErrs {
		for _, rule := range rc.Rules {
			if rule.Failed(metrics) {
				errs[rule.Field] = rule.Message
				break
			}
		}
	}

	return metrics, errs
}
