package braceexpand

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// ErrUnbalancedBraces is returned for a pattern whose braces do not pair up.
var ErrUnbalancedBraces = errors.New("unbalanced braces")

// maxExpansions bounds the number of strings one pattern may produce.
const maxExpansions = 1 << 16

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

var (
	intRange  = regexp.MustCompile(`^(-?\d+)\.\.(-?\d+)(?:\.\.-?(\d+))?$`)
	charRange = regexp.MustCompile(`^([A-Za-z])\.\.([A-Za-z])(?:\.\.-?(\d+))?$`)
	escaped   = regexp.MustCompile(`\\(.)`)
)

// Expand returns every string pattern expands to, in order.
func Expand(pattern string) ([]string, error) {
	out, err := expandPattern(pattern)
	if err != nil {
		return nil, fmt.Errorf("can't expand %q: %w", pattern, err)
	}
	for i, s := range out {
		out[i] = escaped.ReplaceAllString(s, "$1")
	}
	return out, nil
}

// expandPattern splits pattern into literal text and top-level brace groups
// and returns the cartesian product of their alternatives.
func expandPattern(pattern string) ([]string, error) {
	var items [][]string
	start, depth := 0, 0
	for pos := 0; pos < len(pattern); pos++ {
		switch pattern[pos] {
		case '\\':
			pos++
		case '{':
			if depth == 0 && pos > start {
				items = append(items, []string{pattern[start:pos]})
				start = pos
			}
			depth++
		case '}':
			depth--
			if depth < 0 {
				return nil, ErrUnbalancedBraces
			}
			if depth > 0 {
				continue
			}
			expr := pattern[start+1 : pos]
			alts, ok, err := expandExpression(expr)
			if err != nil {
				return nil, err
			}
			if !ok {
				inner, err := expandPattern(expr)
				if err != nil {
					return nil, err
				}
				items = append(items, []string{"{"}, inner, []string{"}"})
			} else {
				items = append(items, alts)
			}
			start = pos + 1
		}
	}
	if depth != 0 {
		return nil, ErrUnbalancedBraces
	}
	if start < len(pattern) {
		items = append(items, []string{pattern[start:]})
	}
	return product(items)
}

// expandExpression expands the inside of a brace group. ok is false when
// expr is neither a range nor a comma list.
func expandExpression(expr string) (alts []string, ok bool, err error) {
	if m := intRange.FindStringSubmatch(expr); m != nil {
		alts, err := intSequence(m[1], m[2], m[3])
		return alts, err == nil, err
	}
	if m := charRange.FindStringSubmatch(expr); m != nil {
		return charSequence(m[1][0], m[2][0], m[3]), true, nil
	}
	return expandList(expr)
}

// expandList expands a top-level comma list.
func expandList(expr string) ([]string, bool, error) {
	var alts []string
	found := false
	start, depth := 0, 0
	for pos := 0; pos < len(expr); pos++ {
		switch expr[pos] {
		case '\\':
			pos++
		case '{':
			depth++
		case '}':
			depth--
		case ',':
			if depth != 0 {
				continue
			}
			found = true
			part, err := expandPattern(expr[start:pos])
			if err != nil {
				return nil, false, err
			}
			alts = append(alts, part...)
			start = pos + 1
		}
	}
	if depth != 0 {
		return nil, false, ErrUnbalancedBraces
	}
	if !found {
		return nil, false, nil
	}
	last, err := expandPattern(expr[start:])
	if err != nil {
		return nil, false, err
	}
	return append(alts, last...), true, nil
}

// charStep parses the step of a character range. Steps past the end of the
// alphabet all behave alike, so oversized ones are clamped.
func charStep(incr string) int {
	if incr == "" {
		return 1
	}
	n, err := strconv.Atoi(incr)
	if err != nil || n > len(alphabet) {
		return len(alphabet)
	}
	if n == 0 {
		return 1
	}
	return n
}

// intSequence expands an integer range. Endpoints and step may be of any
// size; only the number of elements is bounded.
func intSequence(left, right, incr string) ([]string, error) {
	from, ok := new(big.Int).SetString(left, 10)
	if !ok {
		return nil, fmt.Errorf("invalid range start %q", left)
	}
	to, ok := new(big.Int).SetString(right, 10)
	if !ok {
		return nil, fmt.Errorf("invalid range end %q", right)
	}
	by := big.NewInt(1)
	if incr != "" {
		if _, ok := by.SetString(incr, 10); !ok {
			return nil, fmt.Errorf("invalid range step %q", incr)
		}
		if by.Sign() == 0 {
			by.SetInt64(1)
		}
	}
	ascending := from.Cmp(to) <= 0
	if !ascending {
		by.Neg(by)
	}

	width := 0
	if zeroPadded(left) || zeroPadded(right) {
		width = max(len(left), len(right))
	}

	var out []string
	for i := new(big.Int).Set(from); ; i.Add(i, by) {
		if (ascending && i.Cmp(to) > 0) || (!ascending && i.Cmp(to) < 0) {
			break
		}
		if len(out) >= maxExpansions {
			return nil, fmt.Errorf("range %s..%s has more than %d elements", left, right, maxExpansions)
		}
		out = append(out, fmt.Sprintf("%0*d", width, i))
	}
	return out, nil
}

func zeroPadded(s string) bool {
	if s == "0" || s == "-0" {
		return false
	}
	return strings.HasPrefix(s, "0") || strings.HasPrefix(s, "-0")
}

func charSequence(left, right byte, incr string) []string {
	by := charStep(incr)
	from := strings.IndexByte(alphabet, left)
	to := strings.IndexByte(alphabet, right)

	var out []string
	if from <= to {
		for i := from; i <= to; i += by {
			out = append(out, alphabet[i:i+1])
		}
	} else {
		for i := from; i >= to; i -= by {
			out = append(out, alphabet[i:i+1])
		}
	}
	return out
}

// product returns every concatenation that takes one alternative from each
// item, varying the last item fastest.
func product(items [][]string) ([]string, error) {
	out := []string{""}
	for _, alts := range items {
		if len(out)*len(alts) > maxExpansions {
			return nil, fmt.Errorf("pattern expands to more than %d strings", maxExpansions)
		}
		next := make([]string, 0, len(out)*len(alts))
		for _, prefix := range out {
			for _, alt := range alts {
				next = append(next, prefix+alt)
			}
		}
		out = next
	}
	return out, nil
}
