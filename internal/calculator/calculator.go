// Package calculator computes the return on a single stake at decimal odds.
package calculator

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidInput is returned when stake or odds is not a positive finite number.
var ErrInvalidInput = errors.New("Please enter valid stake and odds") //nolint:stylecheck // shown to users verbatim

// Result holds the formatted outcome of a stake.
type Result struct {
	TotalReturn string
	Profit      string
}

// Calculate returns the total return (stake*odds) and the profit over the stake, both with two decimals.
func Calculate(stake, odds float64) (Result, error) {
	if !positiveFinite(stake) || !positiveFinite(odds) {
		return Result{}, ErrInvalidInput
	}
	product := stake * odds
	if !positiveFinite(product) {
		return Result{}, ErrInvalidInput
	}
	total := format(product)
	// Profit is taken from the rounded total so the two figures always agree.
	rounded, _ := strconv.ParseFloat(total, 64)
	return Result{
		TotalReturn: total,
		Profit:      format(rounded - stake),
	}, nil
}

// Parse converts raw form input into numbers. Anything that does not parse counts as zero.
func Parse(stakeRaw, oddsRaw string) (stake, odds float64) {
	return parseLenient(stakeRaw), parseLenient(oddsRaw)
}

// Evaluate is Parse followed by Calculate.
func Evaluate(stakeRaw, oddsRaw string) (Result, error) {
	return Calculate(Parse(stakeRaw, oddsRaw))
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// parseLenient reads the longest leading decimal literal, so "12abc" is 12
// and "abc" is 0. Words such as "inf" or "nan" and hex forms are not numbers here.
// A literal too large for float64 comes back as ±Inf.
func parseLenient(raw string) float64 {
	prefix := numericPrefix(strings.TrimSpace(raw))
	if prefix == "" {
		return 0
	}
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return v
}

// numericPrefix returns [sign] digits [. digits] [e [sign] digits] from the
// start of s, or "" when no mantissa digit is present.
func numericPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return ""
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		start := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > start {
			i = j
		}
	}
	return s[:i]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
