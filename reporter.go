package modelgen

import (
	"io"

	"github.com/fatih/color"
)

// Reporter writes CLI progress lines. Colour is dropped automatically when
// the process output is not a terminal (see color.NoColor).
type Reporter struct {
	w       io.Writer
	verbose bool

	success *color.Color
	warn    *color.Color
	fail    *color.Color
	info    *color.Color
}

// NewReporter creates a reporter writing to w. Verbose* methods only print
// when verbose is set.
func NewReporter(w io.Writer, verbose bool) *Reporter {
	return &Reporter{
		w:       w,
		verbose: verbose,
		success: color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed),
		info:    color.New(color.FgCyan),
	}
}

// Verbose reports whether verbose output is on.
func (r *Reporter) Verbose() bool {
	return r.verbose
}

// Writer returns the underlying writer.
func (r *Reporter) Writer() io.Writer {
	return r.w
}

func (r *Reporter) Successf(format string, args ...any) {
	r.success.Fprintf(r.w, format+"\n", args...)
}

func (r *Reporter) Warnf(format string, args ...any) {
	r.warn.Fprintf(r.w, format+"\n", args...)
}

func (r *Reporter) Errorf(format string, args ...any) {
	r.fail.Fprintf(r.w, format+"\n", args...)
}

func (r *Reporter) VerboseSuccessf(format string, args ...any) {
	if r.verbose {
		r.Successf(format, args...)
	}
}

func (r *Reporter) VerboseWarnf(format string, args ...any) {
	if r.verbose {
		r.Warnf(format, args...)
	}
}

func (r *Reporter) VerboseInfof(format string, args ...any) {
	if r.verbose {
		r.info.Fprintf(r.w, format+"\n", args...)
	}
}
