package generator

import (
	"fmt"
	"os"
	"strings"
)

// Named file modes
const (
	ModeCreateExclusive = "create-exclusive"
	ModeOverwrite       = "overwrite"
	ModeAppend          = "append"
	ModeCreate          = "create"
)

var fileModeFlags = map[string]int{
	ModeCreateExclusive: os.O_WRONLY | os.O_CREATE | os.O_EXCL,
	ModeOverwrite:       os.O_WRONLY | os.O_CREATE | os.O_TRUNC,
	ModeAppend:          os.O_WRONLY | os.O_CREATE | os.O_APPEND,
	ModeCreate:          os.O_WRONLY | os.O_CREATE,

	// fopen(3) style spellings
	"x":  os.O_WRONLY | os.O_CREATE | os.O_EXCL,
	"x+": os.O_RDWR | os.O_CREATE | os.O_EXCL,
	"w":  os.O_WRONLY | os.O_CREATE | os.O_TRUNC,
	"w+": os.O_RDWR | os.O_CREATE | os.O_TRUNC,
	"a":  os.O_WRONLY | os.O_CREATE | os.O_APPEND,
	"a+": os.O_RDWR | os.O_CREATE | os.O_APPEND,
	"c":  os.O_WRONLY | os.O_CREATE,
	"c+": os.O_RDWR | os.O_CREATE,
}

// OpenFlags maps a file mode to os.OpenFile flags. fopen style modes may
// carry the 'b' or 't' translation letters, which are ignored.
func OpenFlags(mode string) (int, error) {
	if flags, ok := fileModeFlags[mode]; ok {
		return flags, nil
	}

	if len(mode) <= 3 {
		stripped := strings.NewReplacer("b", "", "t", "").Replace(mode)
		if len(stripped) > 0 && len(stripped) <= 2 {
			if flags, ok := fileModeFlags[stripped]; ok {
				return flags, nil
			}
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownFileMode, mode)
}
