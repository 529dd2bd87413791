// Package canon implements a pure, idempotent settlement-name
// normalization function that absorbs the formatting drift the Central
// Elections Committee introduced between election cycles (dash
// variants, geresh/gershayim punctuation, parenthetical notes,
// double-yod spelling), plus a small table of known publisher typos.
package canon

import "strings"

// overrides is the fixed table of known publisher typos/mergers,
// applied exactly once after the structural normalization steps.
var overrides = map[string]string{
	"גולס":  "ג'וליס",
	"גוליס": "ג'וליס",
}

const (
	geresh    = '׳' // Hebrew geresh
	gershayim = '״' // Hebrew gershayim
)

// Canon normalizes a settlement name:
//  1. dashes and en-dashes become spaces;
//  2. ASCII apostrophe, Hebrew geresh, ASCII double-quote, and Hebrew
//     gershayim are deleted;
//  3. parentheses become spaces;
//  4. internal whitespace runs collapse to one space, and the result is
//     trimmed;
//  5. the two-letter "double yod" sequence (יי) contracts to the single
//     letter form (י);
//  6. a fixed override table is applied once, last.
//
// Canon is idempotent: Canon(Canon(x)) == Canon(x) for every input.
// Applying steps 1-5 again to a string they already produced is a
// no-op, and every override output maps back to itself: "ג'וליס" loses
// its apostrophe in step 2, becomes the override key "גוליס", and step
// 6 restores "ג'וליס".
func Canon(name string) string {
	if name == "" {
		return name
	}

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch r {
		case '-', '–': // hyphen-minus, en dash
			b.WriteRune(' ')
		case '\'', geresh, '"', gershayim:
			// deleted
		case '(', ')':
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}

	collapsed := strings.Join(strings.Fields(b.String()), " ")
	contracted := contractDoubleYod(collapsed)

	if override, ok := overrides[contracted]; ok {
		return override
	}
	return contracted
}

// contractDoubleYod collapses every run of two or more consecutive yod
// characters to a single one. A single strings.ReplaceAll pass would
// leave two or more yods behind on any run of three or more (e.g. "יייי"
// reduces to "יי" in one pass, not "י"), which breaks idempotence; this
// walks the run length directly instead.
func contractDoubleYod(s string) string {
	const yod = 'י'
	var b strings.Builder
	b.Grow(len(s))
	run := 0
	flush := func() {
		if run > 0 {
			b.WriteRune(yod)
		}
		run = 0
	}
	for _, r := range s {
		if r == yod {
			run++
			continue
		}
		flush()
		b.WriteRune(r)
	}
	flush()
	return b.String()
}
