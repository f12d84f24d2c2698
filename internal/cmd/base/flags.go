package base

import (
	"bytes"
	"flag"
	"fmt"
)

// FlagSet wraps a flag.FlagSet so commands can render their flags in help
// output.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet returns a FlagSet that reports parse errors instead of printing
// usage to stderr.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	f.Usage = func() {}
	f.SetOutput(&bytes.Buffer{})
	return &FlagSet{FlagSet: f}
}

// Help returns the flag defaults formatted for a command's help text.
func (f *FlagSet) Help() string {
	var buf bytes.Buffer
	buf.WriteString("\n\nOptions:\n\n")
	f.VisitAll(func(fl *flag.Flag) {
		fmt.Fprintf(&buf, "  -%s\n      %s\n", fl.Name, fl.Usage)
		if fl.DefValue != "" {
			fmt.Fprintf(&buf, "      (default: %s)\n", fl.DefValue)
		}
	})
	return buf.String()
}
