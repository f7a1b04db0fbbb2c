package modelgen

import (
	"fmt"
	"io"
	"maps"
	"strings"

	"github.com/alecthomas/kong"
)

// Defaults applied when the option is not given on the command line
const (
	DefaultHost     = "127.0.0.1"
	DefaultPort     = "3306"
	DefaultFileMode = "create-exclusive"
)

// Option names as they appear after the leading "--"
const (
	OptHost         = "host"
	OptPort         = "port"
	OptDatabaseName = "database-name"
	OptUser         = "user"
	OptPassword     = "password"
	OptConfig       = "config"
	OptVerbose      = "verbose"
	OptFileMode     = "fileMode"
	OptSchemaJSON   = "schema-json"
)

// RequiredParams lists the options without which nothing is generated.
var RequiredParams = []string{OptDatabaseName, OptUser, OptPassword, OptConfig}

var knownOptions = map[string]bool{
	OptHost:         true,
	OptPort:         true,
	OptDatabaseName: true,
	OptUser:         true,
	OptPassword:     true,
	OptConfig:       true,
	OptFileMode:     true,
	OptSchemaJSON:   true,
}

// switches take no value
var switches = map[string]bool{
	OptVerbose: true,
}

// flags is the kong grammar for the recognized options.
type flags struct {
	DatabaseName string `name:"database-name" help:"MySQL database name."`
	User         string `name:"user" help:"MySQL user name."`
	Password     string `name:"password" help:"MySQL user password."`
	Host         string `name:"host" help:"MySQL host." default:"127.0.0.1"`
	Port         string `name:"port" help:"MySQL port." default:"3306"`
	Verbose      bool   `name:"verbose" help:"Verbose mode."`
	Config       string `name:"config" help:"JSON string configuration for generator, or @path to a JSON/YAML file."`
	FileMode     string `name:"fileMode" help:"Default file open mode: create-exclusive, overwrite, append or create." default:"create-exclusive"`
	SchemaJSON   string `name:"schema-json" help:"Also write the introspected schema as tbls JSON to this path."`
}

// Config is the immutable run configuration built from the command line.
type Config struct {
	Host            string
	Port            string
	DatabaseName    string
	User            string
	Password        string
	GeneratorConfig string
	FileMode        string
	SchemaJSON      string
	Verbose         bool

	extra   map[string]string
	present map[string]bool
}

// Has reports whether the option was given on the command line.
func (c Config) Has(name string) bool {
	return c.present[name]
}

// Extra returns a copy of the unrecognized options and their values.
func (c Config) Extra() map[string]string {
	return maps.Clone(c.extra)
}

// BuildConfig parses "--name value" pairs ("--verbose" is a bare switch).
// Unknown options are kept in Extra. The returned error wraps
// ErrMissingRequiredParams when any of RequiredParams is absent.
func BuildConfig(args []string) (Config, error) {
	known, extra, present := scanArgs(args)

	var missing []string

	for _, name := range RequiredParams {
		if !present[name] {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", ErrMissingRequiredParams, strings.Join(missing, ", "))
	}

	var f flags

	parser, err := newParser(&f, "modelgen", io.Discard)
	if err != nil {
		return Config{}, err
	}

	if _, err := parser.Parse(known); err != nil {
		return Config{}, fmt.Errorf("failed to parse options: %w", err)
	}

	return Config{
		Host:            ExpandEnv(f.Host),
		Port:            ExpandEnv(f.Port),
		DatabaseName:    ExpandEnv(f.DatabaseName),
		User:            ExpandEnv(f.User),
		Password:        ExpandEnv(f.Password),
		GeneratorConfig: f.Config,
		FileMode:        f.FileMode,
		SchemaJSON:      f.SchemaJSON,
		Verbose:         f.Verbose,
		extra:           extra,
		present:         present,
	}, nil
}

// scanArgs walks the raw arguments. Every "--name" consumes the following
// argument as its value, even one that starts with "--". Recognized options
// are normalised to "--name=value" for kong.
func scanArgs(args []string) ([]string, map[string]string, map[string]bool) {
	extra := map[string]string{}
	present := map[string]bool{}
	values := map[string]string{}

	var order []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") {
			continue
		}

		name := arg[2:]

		if switches[name] {
			if !present[name] {
				order = append(order, name)
			}

			present[name] = true

			continue
		}

		// a trailing option without a value counts as not given
		if i+1 >= len(args) {
			continue
		}

		i++
		value := args[i]

		if !knownOptions[name] {
			extra[name] = value
			present[name] = true

			continue
		}

		if !present[name] {
			order = append(order, name)
		}

		present[name] = true
		values[name] = value
	}

	known := make([]string, 0, len(order))

	for _, name := range order {
		if switches[name] {
			known = append(known, "--"+name)
			continue
		}

		known = append(known, "--"+name+"="+values[name])
	}

	return known, extra, present
}

func newParser(f *flags, name string, w io.Writer) (*kong.Kong, error) {
	parser, err := kong.New(f,
		kong.Name(name),
		kong.Description("Generates one source file per database table from each configured template."),
		kong.Writers(w, w),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build option parser: %w", err)
	}

	return parser, nil
}
