package align

import (
	"fmt"
	"strings"
)

// Render produces the three-line text form of al:
//
//	line 1: s, with the gap rune where s has a gap
//	line 2: the marker rune under every column pairing a symbol of s with a
//	        symbol of t (only identical pairs under WithIdentityOnly), space elsewhere
//	line 3: t, with the gap rune where t has a gap
//
// Each line ends with "\n". The columns cover both full sequences (see
// Alignment.Span), so for local alignments the unaligned flanks appear
// opposite gap runes. s and t are indexed by rune and must have exactly the
// lengths al was computed for.
func Render(al Alignment, s, t string, opts ...RenderOption) (string, error) {
	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	rs, rt := []rune(s), []rune(t)
	if len(rs) != al.Len1 || len(rt) != al.Len2 {
		return "", fmt.Errorf("%w: got (%d, %d), want (%d, %d)",
			ErrSequenceMismatch, len(rs), len(rt), al.Len1, al.Len2)
	}

	cols := al.Span()
	var top, mid, bottom strings.Builder
	top.Grow(len(cols) + 1)
	mid.Grow(len(cols) + 1)
	bottom.Grow(len(cols) + 1)
	for _, c := range cols {
		a, b := o.gap, o.gap
		if c.I != Gap {
			a = rs[c.I]
		}
		if c.J != Gap {
			b = rt[c.J]
		}
		top.WriteRune(a)
		bottom.WriteRune(b)
		if c.I != Gap && c.J != Gap && (!o.identityOnly || a == b) {
			mid.WriteRune(o.marker)
		} else {
			mid.WriteByte(' ')
		}
	}

	return top.String() + "\n" + mid.String() + "\n" + bottom.String() + "\n", nil
}
