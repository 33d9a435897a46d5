// Package config loads the scene configuration used by the stepviz shell:
// playback delay, RNG seed, algorithm choices, maze size and log level.
//
// Files are YAML (gopkg.in/yaml.v3). Missing keys keep the values from
// Default; the merged result is checked with go-playground/validator tags
// plus a "loglevel" rule backed by charmbracelet/log.ParseLevel.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Maze sizes the generated maze in rooms.
type Maze struct {
	Rows int `yaml:"rows" validate:"min=1,max=200"`
	Cols int `yaml:"cols" validate:"min=1,max=200"`
}

// Config is one scene configuration.
type Config struct {
	Delay     time.Duration `yaml:"delay" validate:"gt=0"`
	Seed      int64         `yaml:"seed"`
	Sort      string        `yaml:"sort" validate:"oneof=bubble insertion selection merge quick"`
	Heuristic string        `yaml:"heuristic" validate:"oneof=manhattan euclidean chebyshev octile"`
	MST       string        `yaml:"mst" validate:"oneof=kruskal prim"`
	Maze      Maze          `yaml:"maze"`
	LogLevel  string        `yaml:"log_level" validate:"loglevel"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		_, err := log.ParseLevel(fl.Field().String())
		return err == nil
	})

	return v
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Delay:     100 * time.Millisecond,
		Seed:      1,
		Sort:      "quick",
		Heuristic: "manhattan",
		MST:       "kruskal",
		Maze:      Maze{Rows: 8, Cols: 16},
		LogLevel:  "info",
	}
}

// Load decodes YAML from r over Default and validates the result.
func Load(r io.Reader) (Config, error) {
	c := Default()
	data, err := io.ReadAll(r)
	if err != nil {
		return c, fmt.Errorf("config: read: %w", err)
	}
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&c); err != nil {
			return c, fmt.Errorf("config: decode: %w", err)
		}
	}
	if err := Validate(c); err != nil {
		return c, err
	}

	return c, nil
}

// LoadFile reads path with Load.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Default(), fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Validate checks c against its struct tags.
func Validate(c Config) error {
	if err := validate.Struct(c); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			fe := ve[0]
			return fmt.Errorf("%w: %s fails %q (value %v)", ErrInvalid, fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// Level returns the parsed log level, falling back to info.
func (c Config) Level() log.Level {
	l, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}

	return l
}

// Encode writes c as YAML.
func (c Config) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}

	return enc.Close()
}
