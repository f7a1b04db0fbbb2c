package modelgen

import (
	"fmt"
	"os"
	"regexp"

	"github.com/joho/godotenv"
)

var envRef = regexp.MustCompile(`\$\{([^}]+)\}`)

// LoadEnvFiles loads the given .env files into the process environment.
// Files that do not exist are skipped. Variables already set win.
func LoadEnvFiles(paths ...string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("%w %s: %w", ErrEnvFile, path, err)
		}
	}

	return nil
}

// ExpandEnv replaces ${VAR} references with the variable's value.
// Bare $VAR is left alone so passwords containing '$' survive.
func ExpandEnv(s string) string {
	return envRef.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})
}
