package mkd

import (
	"fmt"
	"math"
	"strings"
)

// Flag is a feature bitmask. Each bit switches one parsing or rendering
// behavior. Bit values match discount's mkdio.h so masks written for the C
// tool (MARKDOWN_FLAGS, -F) mean the same thing here.
type Flag uint32

const (
	NoLinks         Flag = 0x00000001 // render links as plain text
	NoImage         Flag = 0x00000002 // render images as their alt text
	NoPants         Flag = 0x00000004 // no typographic quotes and dashes
	NoHTML          Flag = 0x00000008 // escape raw HTML
	Strict          Flag = 0x00000010 // disable superscript and relaxed emphasis
	TagText         Flag = 0x00000020 // process text inside an html tag
	NoExt           Flag = 0x00000040 // no pseudo-protocol link extensions
	CData           Flag = 0x00000080 // escape the output for an XML CDATA section
	NoSuperscript   Flag = 0x00000100 // no A^B
	NoRelaxed       Flag = 0x00000200 // emphasis happens everywhere
	NoTables        Flag = 0x00000400 // no tables
	NoStrikethrough Flag = 0x00000800 // no ~~strikethrough~~
	TOC             Flag = 0x00001000 // assign heading ids for a table of contents
	OneCompat       Flag = 0x00002000 // markdown 1.0 compatibility
	Autolink        Flag = 0x00004000 // link bare URLs
	Safelink        Flag = 0x00008000 // only allow known-safe link schemes
	NoHeader        Flag = 0x00010000 // no pandoc-style % header block
	TabStop         Flag = 0x00020000 // expand tabs to four spaces
	NoDivQuote      Flag = 0x00040000 // no >%class% blockquotes
	NoAlphaList     Flag = 0x00080000 // no alphabetic lists
	NoDList         Flag = 0x00100000 // no definition lists
	ExtraFootnote   Flag = 0x00200000 // markdown-extra footnotes
)

var flagNames = [...]struct {
	flag Flag
	name string
}{
	{NoLinks, "!LINKS"},
	{NoImage, "!IMAGE"},
	{NoPants, "!PANTS"},
	{NoHTML, "!HTML"},
	{Strict, "STRICT"},
	{TagText, "TAGTEXT"},
	{NoExt, "!EXT"},
	{CData, "CDATA"},
	{NoSuperscript, "!SUPERSCRIPT"},
	{NoRelaxed, "!RELAXED"},
	{NoTables, "!TABLES"},
	{NoStrikethrough, "!STRIKETHROUGH"},
	{TOC, "TOC"},
	{OneCompat, "MKD_1_COMPAT"},
	{Autolink, "AUTOLINK"},
	{Safelink, "SAFELINK"},
	{NoHeader, "!HEADER"},
	{TabStop, "TABSTOP"},
	{NoDivQuote, "!DIVQUOTE"},
	{NoAlphaList, "!ALPHALIST"},
	{NoDList, "!DLIST"},
	{ExtraFootnote, "FOOTNOTE"},
}

// Has reports whether every bit of other is set in f.
func (f Flag) Has(other Flag) bool {
	return f&other == other
}

// Names returns the symbolic name of every set bit, in bit order. Bits
// without a name are reported in hex.
func (f Flag) Names() []string {
	var names []string
	rest := f
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			names = append(names, fn.name)
			rest &^= fn.flag
		}
	}
	for bit := Flag(1); rest != 0; bit <<= 1 {
		if rest&bit != 0 {
			names = append(names, fmt.Sprintf("%#x", uint32(bit)))
			rest &^= bit
		}
	}
	return names
}

func (f Flag) String() string {
	if f == 0 {
		return "0"
	}
	return strings.Join(f.Names(), " ")
}

// ParseFlag reads a numeric mask the way strtol(s, 0, 0) does: leading
// white space, an optional sign, then hex after 0x, octal after a leading 0,
// or decimal. Parsing stops at the first byte that is not a digit of the
// base, so trailing text is ignored and input without digits yields 0.
// Out of range values saturate and negative values wrap like the C
// conversion to an unsigned mask.
func ParseFlag(s string) Flag {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	base := uint64(10)
	if i+1 < len(s) && s[i] == '0' && (s[i+1] == 'x' || s[i+1] == 'X') && i+2 < len(s) && digitValue(s[i+2]) < 16 {
		base = 16
		i += 2
	} else if i < len(s) && s[i] == '0' {
		base = 8
	}

	const limit = uint64(math.MaxInt64)
	var v uint64
	overflow := false
	for ; i < len(s); i++ {
		d := digitValue(s[i])
		if d >= base {
			break
		}
		if v > (limit-d)/base {
			overflow = true
			continue
		}
		v = v*base + d
	}
	switch {
	case overflow && neg:
		// LONG_MIN has no bits in the low word.
		return 0
	case overflow:
		return ^Flag(0)
	case neg:
		return Flag(uint32(-v))
	}
	return Flag(uint32(v))
}

func isSpace(b byte) bool {
	return b == ' ' || (b >= '\t' && b <= '\r')
}

// digitValue returns the value of b as a base-36 digit, or 36 when b is not
// a digit at all.
func digitValue(b byte) uint64 {
	switch {
	case b >= '0' && b <= '9':
		return uint64(b - '0')
	case b >= 'a' && b <= 'z':
		return uint64(b-'a') + 10
	case b >= 'A' && b <= 'Z':
		return uint64(b-'A') + 10
	}
	return 36
}
