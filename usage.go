package modelgen

import (
	"fmt"
	"io"
)

// Usage writes the option summary for the named program to w.
func Usage(w io.Writer, name string) error {
	var f flags

	parser, err := newParser(&f, name, w)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsageRender, err)
	}

	ctx, err := parser.Parse(nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsageRender, err)
	}

	if err := ctx.PrintUsage(false); err != nil {
		return fmt.Errorf("%w: %w", ErrUsageRender, err)
	}

	return nil
}
