package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const redacted = "********"

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name" yaml:"name"`
	Value  string `json:"value" yaml:"value"`
	Source Source `json:"source" yaml:"source"`
}

// Attributes returns all configuration attributes in declaration order.
// Secret values are redacted.
func (s *Settings) Attributes() []Attribute {
	return []Attribute{
		{Name: "API_PREFIX", Value: s.v.APIPrefix, Source: s.Source("API_PREFIX")},
		{Name: "DEBUG", Value: strconv.FormatBool(s.v.Debug), Source: s.Source("DEBUG")},
		{Name: "DATABASE_URI", Value: redactURI(s.v.DatabaseURI), Source: s.Source("DATABASE_URI")},
		{Name: "ALLOWED_ORIGINS", Value: s.v.AllowedOrigins, Source: s.Source("ALLOWED_ORIGINS")},
		{Name: "OPENAI_API_KEY", Value: redactSecret(s.v.OpenAIAPIKey), Source: s.Source("OPENAI_API_KEY")},
	}
}

// FormatText returns a text representation of the configuration
func (s *Settings) FormatText() string {
	envFile := s.envFile
	if envFile == "" {
		envFile = "(disabled)"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Env file: %s\n\n", envFile))
	sb.WriteString(fmt.Sprintf("%-20s %-40s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-20s %-40s %s\n", "----", "-----", "------"))

	for _, attr := range s.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-20s %-40s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

type report struct {
	EnvFile    string      `json:"env_file" yaml:"env_file"`
	Attributes []Attribute `json:"attributes" yaml:"attributes"`
}

// FormatJSON returns a JSON representation of the configuration
func (s *Settings) FormatJSON() (string, error) {
	data, err := json.MarshalIndent(report{EnvFile: s.envFile, Attributes: s.Attributes()}, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatYAML returns a YAML representation of the configuration
func (s *Settings) FormatYAML() (string, error) {
	data, err := yaml.Marshal(report{EnvFile: s.envFile, Attributes: s.Attributes()})
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func redactSecret(v string) string {
	if v == "" {
		return ""
	}
	return redacted
}

var dsnPasswordRgx = regexp.MustCompile(`(password=)(\S+)`)

// redactURI hides the password of a URL or key=value style connection string.
func redactURI(v string) string {
	if v == "" {
		return ""
	}
	if u, err := url.Parse(v); err == nil && u.User != nil {
		if _, ok := u.User.Password(); ok {
			return u.Redacted()
		}
		return v
	}
	return dsnPasswordRgx.ReplaceAllString(v, "${1}"+redacted)
}
