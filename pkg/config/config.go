package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
)

const (
	// DefaultEnvFile is the fallback environment file, relative to the working directory.
	DefaultEnvFile = ".env"
	// DefaultAPIPrefix is used when API_PREFIX is absent from every source.
	DefaultAPIPrefix = "/api"
)

// values is the parse target. Tags carry the exact environment names. The
// default tag applies only when a name is absent from every source; a name set
// to the empty string keeps the empty value.
type values struct {
	APIPrefix      string `env:"API_PREFIX" default:"/api"`
	Debug          bool   `env:"DEBUG" default:"false"`
	DatabaseURI    string `env:"DATABASE_URI,required"`
	AllowedOrigins string `env:"ALLOWED_ORIGINS"`
	OpenAIAPIKey   string `env:"OPENAI_API_KEY,required"`
}

// Settings holds the startup configuration. It is read-only once constructed
// and safe to share between goroutines.
type Settings struct {
	v values

	// sources tracks where each value came from
	sources map[string]Source

	envFile string
}

// Option customizes how Load gathers its inputs.
type Option func(*options)

type options struct {
	envFile string
	environ map[string]string
}

// WithEnvFile sets the fallback environment file. An empty path disables it.
func WithEnvFile(path string) Option {
	return func(o *options) {
		o.envFile = path
	}
}

// WithEnviron replaces the process environment with env. Keys are matched
// exactly. ${VAR} references in the env file expand only from keys defined
// earlier in that file, never from env or the process environment.
func WithEnviron(env map[string]string) Option {
	return func(o *options) {
		o.environ = env
	}
}

// Process-wide settings, constructed at most once.
var (
	processOnce     sync.Once
	processSettings *Settings
	processErr      error
)

// Get returns the process-wide Settings, constructing it on the first call
// with opts. Later calls ignore opts and return the first result, including
// a construction error.
func Get(opts ...Option) (*Settings, error) {
	processOnce.Do(func() {
		processSettings, processErr = Load(opts...)
	})
	return processSettings, processErr
}

// Load builds Settings from the environment, falling back to the env file for
// variables the environment does not define.
func Load(opts ...Option) (*Settings, error) {
	o := options{envFile: DefaultEnvFile}
	for _, opt := range opts {
		opt(&o)
	}

	environ := o.environ
	if environ == nil {
		environ = processEnviron()
	}

	fileEnv, err := readEnvFile(o.envFile)
	if err != nil {
		return nil, err
	}

	merged := mergeEnviron(environ, fileEnv)

	var v values
	var cfgErr *Error
	err = env.ParseWithOptions(&v, env.Options{
		Environment: withDefaults(merged),
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf(false): parseBool,
		},
	})
	if err != nil {
		cfgErr = newError(err, merged)
	}
	if invalid := emptyValueErrors(merged); len(invalid) > 0 {
		if cfgErr == nil {
			cfgErr = &Error{}
		}
		cfgErr.Invalid = append(cfgErr.Invalid, invalid...)
	}
	if cfgErr != nil {
		return nil, cfgErr
	}

	s := &Settings{
		v:       v,
		sources: make(map[string]Source, len(attributeNames())),
		envFile: o.envFile,
	}
	for _, name := range attributeNames() {
		switch {
		case hasKey(environ, name):
			s.sources[name] = SourceEnvironment
		case hasKey(fileEnv, name):
			s.sources[name] = SourceFile
		default:
			s.sources[name] = SourceDefault
		}
	}
	return s, nil
}

// attributeNames lists the environment names in declaration order.
func attributeNames() []string {
	t := reflect.TypeOf(values{})
	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		names = append(names, envName(t.Field(i)))
	}
	return names
}

// fieldEnvNames maps Go field names of values to their environment names.
func fieldEnvNames() map[string]string {
	t := reflect.TypeOf(values{})
	m := make(map[string]string, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		m[t.Field(i).Name] = envName(t.Field(i))
	}
	return m
}

// withDefaults returns a copy of environ with the default of every absent name
// filled in.
func withDefaults(environ map[string]string) map[string]string {
	out := make(map[string]string, len(environ))
	for k, v := range environ {
		out[k] = v
	}
	t := reflect.TypeOf(values{})
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		def, ok := f.Tag.Lookup("default")
		if !ok {
			continue
		}
		if name := envName(f); !hasKey(out, name) {
			out[name] = def
		}
	}
	return out
}

// emptyValueErrors reports boolean settings that are present but empty. The
// parser skips empty values, so they would otherwise load as false.
func emptyValueErrors(environ map[string]string) []*FieldError {
	var out []*FieldError
	t := reflect.TypeOf(values{})
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := envName(f)
		if f.Type.Kind() != reflect.Bool || !hasKey(environ, name) || environ[name] != "" {
			continue
		}
		if _, err := parseBool(""); err != nil {
			out = append(out, &FieldError{Field: name, Value: "", Err: err})
		}
	}
	return out
}

func envName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("env"), ",")
	return name
}

func processEnviron() map[string]string {
	m := make(map[string]string)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		m[k] = v
	}
	return m
}

func hasKey(m map[string]string, key string) bool {
	_, ok := m[key]
	return ok
}

// parseBool accepts the usual truthy and falsy spellings, case-insensitively.
func parseBool(s string) (interface{}, error) {
	switch strings.ToLower(s) {
	case "1", "true", "t", "yes", "y", "on":
		return true, nil
	case "0", "false", "f", "no", "n", "off":
		return false, nil
	}
	return nil, fmt.Errorf("%q is not a valid boolean", s)
}

// APIPrefix is the path prefix for API routes.
func (s *Settings) APIPrefix() string { return s.v.APIPrefix }

// Debug reports whether debug mode is enabled.
func (s *Settings) Debug() bool { return s.v.Debug }

// DatabaseURI is the database connection string.
func (s *Settings) DatabaseURI() string { return s.v.DatabaseURI }

// AllowedOrigins is the raw comma-separated origins value.
func (s *Settings) AllowedOrigins() string { return s.v.AllowedOrigins }

// OpenAIAPIKey is the OpenAI API key.
func (s *Settings) OpenAIAPIKey() string { return s.v.OpenAIAPIKey }

// AllowedOriginsList splits AllowedOrigins on commas, trimming each entry and
// dropping empty ones. Each call returns a new slice.
func (s *Settings) AllowedOriginsList() []string {
	return splitAndTrim(s.v.AllowedOrigins)
}

// EnvFile returns the fallback env file path, or "" when disabled.
func (s *Settings) EnvFile() string {
	return s.envFile
}

// Source returns the source of a configuration attribute
func (s *Settings) Source(name string) Source {
	if src, ok := s.sources[name]; ok {
		return src
	}
	return SourceDefault
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
