package crho

import (
	"fmt"
	"io"
	"os"
)

// SyntaxError reports a malformed token sequence at an approximate
// source position.
type SyntaxError struct {
	Loc Location
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: syntax error: %s", e.Loc, e.Msg)
}

// UnsupportedError reports use of a construct the front end recognizes
// but does not implement.
type UnsupportedError struct {
	Loc     Location
	Feature string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s: %s is not implemented", e.Loc, e.Feature)
}

func syntaxErr(loc Location, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Loc: loc, Msg: fmt.Sprintf(format, args...)}
}

// Collector is the text sink for diagnostics. Every reported error is
// written to Out as one line and kept in Diags in report order. There is
// no severity split: everything reported here was recovered from.
type Collector struct {
	Out   io.Writer
	Diags []error
}

// NewCollector returns a collector writing to out, or to stderr when out
// is nil.
func NewCollector(out io.Writer) *Collector {
	if out == nil {
		out = os.Stderr
	}
	return &Collector{Out: out}
}

func (c *Collector) Report(err error) {
	fmt.Fprintln(c.Out, err)
	c.Diags = append(c.Diags, err)
}
