package mkd

import (
	"bytes"
	"testing"
)

func renderString(t *testing.T, src string, flags Flag, opts ...RenderOption) string {
	t.Helper()
	doc, err := NewString(src, flags, opts...)
	if err != nil {
		t.Fatalf("NewString: %v", err)
	}
	defer func() { _ = doc.Close() }()
	if err := doc.Compile(flags); err != nil {
		t.Fatalf("Compile: %v", err)
	}
	var out bytes.Buffer
	if err := doc.WriteHTML(&out); err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}
	return out.String()
}

func mustContain(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !bytes.Contains([]byte(out), []byte(want)) {
			t.Fatalf("missing %q in output: %q", want, out)
		}
	}
}

func mustOmit(t *testing.T, out string, bads ...string) {
	t.Helper()
	for _, bad := range bads {
		if bytes.Contains([]byte(out), []byte(bad)) {
			t.Fatalf("unexpected %q in output: %q", bad, out)
		}
	}
}
