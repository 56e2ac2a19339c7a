// Package finance parses the semi-structured cost and impact strings used in
// the threat-model catalogs ("$500K", "$10M+") into dollar amounts. Parse
// failures are explicit errors so callers can decide to warn, skip, or abort
// instead of silently undercounting exposure.
package finance

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

var (
	// ErrNotCostK means a string is not of the exact form "$<integer>K".
	ErrNotCostK = errors.New("not a $<n>K cost string")
	// ErrNotImpactM means a string does not contain a "$<integer>M" figure.
	ErrNotImpactM = errors.New("not a $<n>M impact string")
)

// ParseCostK parses a control/threat cost string of the exact form "$<integer>K"
// into dollars, so "$500K" is 500000 and "$0K" is 0. Any other shape returns
// ErrNotCostK wrapped with the offending input.
func ParseCostK(s string) (int64, error) {
	if !strings.HasPrefix(s, "$") || !strings.HasSuffix(s, "K") {
		return 0, fmt.Errorf("%q: %w", s, ErrNotCostK)
	}
	n, err := strconv.ParseInt(s[1:len(s)-1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrNotCostK)
	}
	return n * 1000, nil
}

// ParseImpactM extracts a "$<integer>M" figure from a business-impact string,
// so "$10M+ annual fraud losses" is 10000000. The integer is taken between the
// first "$" and the following "M"; anything else returns ErrNotImpactM.
func ParseImpactM(s string) (int64, error) {
	_, after, found := strings.Cut(s, "$")
	if !found {
		return 0, fmt.Errorf("%q: %w", s, ErrNotImpactM)
	}
	digits, _, found := strings.Cut(after, "M")
	if !found {
		return 0, fmt.Errorf("%q: %w", s, ErrNotImpactM)
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrNotImpactM)
	}
	return n * 1000000, nil
}

// SumCostsK sums every parseable "$<n>K" string in values, logging a warning
// for each one skipped. Returns the total in dollars and the skip count.
func SumCostsK(values []string, log *zap.Logger) (total int64, skipped int) {
	for _, v := range values {
		n, err := ParseCostK(v)
		if err != nil {
			if v != "" {
				log.Warn("skipping unparseable cost string", zap.String("value", v))
			}
			skipped++
			continue
		}
		total += n
	}
	return total, skipped
}

// SumImpactsM sums every parseable "$<n>M" business-impact string in values,
// logging a warning for each one skipped.
func SumImpactsM(values []string, log *zap.Logger) (total int64, skipped int) {
	for _, v := range values {
		n, err := ParseImpactM(v)
		if err != nil {
			if v != "" {
				log.Warn("skipping unparseable business impact", zap.String("value", v))
			}
			skipped++
			continue
		}
		total += n
	}
	return total, skipped
}

// FormatUSD renders a dollar amount with comma grouping, e.g. "$1,250,000".
func FormatUSD(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := strconv.FormatInt(amount, 10)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(s[:lead])
	for i := lead; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
