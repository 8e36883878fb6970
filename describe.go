package mkd

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"pkt.systems/version"
)

const describeIndent = 2

// Version returns the version string of the module registered with
// version.SetDefaultModule.
func Version() string {
	return version.Current()
}

// DescribeFlags writes the names of the bits set in flags, word wrapped to
// width columns and indented. A width of zero or less disables wrapping.
// Nothing is written for an empty mask.
func DescribeFlags(w io.Writer, flags Flag, width int) error {
	names := flags.Names()
	if len(names) == 0 {
		return nil
	}
	listing := strings.Join(names, " ")
	if width > describeIndent {
		listing = wordwrap.String(listing, width-describeIndent)
	}
	listing = indent.String(listing, describeIndent)
	if _, err := fmt.Fprintln(w, listing); err != nil {
		return fmt.Errorf("describe flags: %w", err)
	}
	return nil
}
