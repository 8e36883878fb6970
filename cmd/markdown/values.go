package main

import (
	"fmt"

	"pkt.systems/mkd"
)

// maskValue implements -F: each occurrence replaces the running mask.
type maskValue struct {
	mask *mkd.Flag
}

func (v *maskValue) String() string {
	if v.mask == nil {
		return "0"
	}
	return fmt.Sprintf("%#x", uint32(*v.mask))
}

func (v *maskValue) Set(s string) error {
	*v.mask = mkd.ParseFlag(s)
	return nil
}

func (v *maskValue) Type() string { return "bitmap" }

// optionsValue implements -f: each occurrence edits the running mask.
type optionsValue struct {
	mask *mkd.Flag
	warn func(name string)
}

func (v *optionsValue) String() string { return "" }

func (v *optionsValue) Set(s string) error {
	for _, name := range v.mask.Apply(s) {
		v.warn(name)
	}
	return nil
}

func (v *optionsValue) Type() string { return "{+-}flags" }

// textValue implements -s and -t, which share one text slot. -t also
// latches line mode.
type textValue struct {
	cfg  *config
	line bool
}

func (v *textValue) String() string { return "" }

func (v *textValue) Set(s string) error {
	v.cfg.text = s
	v.cfg.hasText = true
	if v.line {
		v.cfg.lineMode = true
	}
	return nil
}

func (v *textValue) Type() string { return "text" }

// outputValue implements -o, which may be given only once.
type outputValue struct {
	path      *string
	seen      bool
	duplicate bool
}

func (v *outputValue) String() string {
	if v.path == nil {
		return ""
	}
	return *v.path
}

func (v *outputValue) Set(s string) error {
	if v.seen {
		v.duplicate = true
		return errTooManyOutputs
	}
	v.seen = true
	*v.path = s
	return nil
}

func (v *outputValue) Type() string { return "ofile" }
