package mkd

import (
	"bytes"
	"testing"
)

func TestGenerateLine(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		in    string
		flags Flag
		want  string
	}{
		{name: "plain", in: "hello", want: "hello"},
		{name: "emphasis", in: "hello *world*", want: "hello <em>world</em>"},
		{name: "nolinks", in: "[a](/b)", flags: NoLinks, want: "a"},
		{name: "cdata", in: "*x*", flags: CData, want: "&lt;em&gt;x&lt;/em&gt;"},
		{name: "heading stays literal", in: "# Head", want: "# Head"},
		{name: "list stays literal", in: "- item *x*", want: "- item <em>x</em>"},
		{name: "fence stays literal", in: "```", want: "```"},
		{name: "superscript", in: "e=mc^2", want: "e=mc<sup>2</sup>"},
		{name: "nohtml", in: "<b>x</b>", flags: NoHTML, want: "&lt;b&gt;x&lt;/b&gt;"},
		{name: "runs", in: "a\n\nb", want: "a\nb"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer
			if err := GenerateLine(&out, tc.in, tc.flags); err != nil {
				t.Fatalf("GenerateLine: %v", err)
			}
			if out.String() != tc.want {
				t.Fatalf("GenerateLine(%q)=%q want %q", tc.in, out.String(), tc.want)
			}
		})
	}
}

func TestGenerateLineAcceptsAnyMask(t *testing.T) {
	for _, flags := range []Flag{0, ^Flag(0), Strict | NoPants, TOC} {
		var out bytes.Buffer
		if err := GenerateLine(&out, "hello", flags); err != nil {
			t.Fatalf("GenerateLine with %#x: %v", uint32(flags), err)
		}
	}
}
