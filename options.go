package mkd

import "strings"

// Option names one switchable feature. Inverted options name the positive
// behavior of a "no" bit: enabling "image" clears NoImage.
type Option struct {
	Name     string
	Inverted bool
	Flag     Flag
}

var optionTable = [...]Option{
	{"tabstop", false, TabStop},
	{"image", true, NoImage},
	{"links", true, NoLinks},
	{"relax", true, Strict},
	{"strict", false, Strict},
	{"tables", true, NoTables},
	{"header", true, NoHeader},
	{"html", true, NoHTML},
	{"ext", true, NoExt},
	{"cdata", false, CData},
	{"pants", true, NoPants},
	{"smarty", true, NoPants},
	{"toc", false, TOC},
	{"autolink", false, Autolink},
	{"safelink", false, Safelink},
	{"del", true, NoStrikethrough},
	{"strikethrough", true, NoStrikethrough},
	{"superscript", true, NoSuperscript},
	{"emphasis", false, NoRelaxed},
	{"divquote", true, NoDivQuote},
	{"alphalist", true, NoAlphaList},
	{"definitionlist", true, NoDList},
	{"1.0", false, OneCompat},
	{"footnotes", false, ExtraFootnote},
	{"footnote", false, ExtraFootnote},
}

// Options returns a copy of the option table in lookup order.
func Options() []Option {
	out := make([]Option, len(optionTable))
	copy(out, optionTable[:])
	return out
}

// LookupOption finds an option by case-insensitive name. The first entry
// with a matching name wins.
func LookupOption(name string) (Option, bool) {
	for _, opt := range optionTable {
		if strings.EqualFold(name, opt.Name) {
			return opt, true
		}
	}
	return Option{}, false
}

// Apply reads a comma-separated option string such as "+toc,-image,nopants"
// and sets or clears the named bits, left to right. A leading '+' enables,
// '-' or a case-insensitive "no" disables, anything else enables. Empty
// entries are skipped. Names missing from the option table are returned in
// the order they appeared; the remaining entries are still applied.
func (f *Flag) Apply(options string) (unknown []string) {
	for _, arg := range strings.Split(options, ",") {
		if arg == "" {
			continue
		}
		enable := true
		switch {
		case arg[0] == '+' || arg[0] == '-':
			enable = arg[0] == '+'
			arg = arg[1:]
		case len(arg) >= 2 && strings.EqualFold(arg[:2], "no"):
			enable = false
			arg = arg[2:]
		}

		opt, ok := LookupOption(arg)
		if !ok {
			unknown = append(unknown, arg)
			continue
		}
		if opt.Inverted {
			enable = !enable
		}
		if enable {
			*f |= opt.Flag
		} else {
			*f &^= opt.Flag
		}
	}
	return unknown
}
