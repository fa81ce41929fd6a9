// Package config loads run files: a list of jobs, each evaluating one special
// function over a grid, with output and logging settings.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownFunction = errors.New("unknown function")
	ErrInvalidDomain   = errors.New("invalid domain")
	ErrFormat          = errors.New("unsupported run file format")
)

const (
	DefaultFormat     = "npy"
	DefaultResolution = 100
	DefaultTolerance  = 1e-10
)

// Functions lists the names a job may evaluate.
var Functions = []string{"jn", "besselintegral", "si", "ci", "cin", "f", "g", "ein", "gamma", "k"}

// Run is a parsed run file.
type Run struct {
	Output string `yaml:"output" toml:"output"`
	Format string `yaml:"format" toml:"format"`
	Log    Log    `yaml:"log" toml:"log"`
	Jobs   []Job  `yaml:"jobs" toml:"jobs"`
}

type Log struct {
	Level  string `yaml:"level" toml:"level"`
	Pretty bool   `yaml:"pretty" toml:"pretty"`
}

type Job struct {
	Name      string  `yaml:"name" toml:"name"`
	Function  string  `yaml:"function" toml:"function"`
	Domain    Domain  `yaml:"domain" toml:"domain"`
	Orders    []int   `yaml:"orders" toml:"orders"`
	Tolerance float64 `yaml:"tolerance" toml:"tolerance"`
}

// Domain is one-dimensional when X and Y are unset, otherwise the rectangle
// X × Y in the complex plane.
type Domain struct {
	Lower      float64   `yaml:"lower" toml:"lower"`
	Upper      float64   `yaml:"upper" toml:"upper"`
	X          []float64 `yaml:"x" toml:"x"`
	Y          []float64 `yaml:"y" toml:"y"`
	Resolution int       `yaml:"resolution" toml:"resolution"`
}

func (d Domain) TwoDimensional() bool {
	return len(d.X) > 0 || len(d.Y) > 0
}

// Load reads a run file, YAML or TOML by extension, applies defaults and
// validates it.
func Load(path string) (*Run, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	var run Run
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		err = dec.Decode(&run)
	case ".toml":
		var md toml.MetaData
		md, err = toml.Decode(string(content), &run)
		if err == nil {
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				err = fmt.Errorf("unknown key %q", undecoded[0].String())
			}
		}
	default:
		return nil, fmt.Errorf("config: %w %q", ErrFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	run.applyDefaults()
	if err := run.Validate(); err != nil {
		return nil, err
	}
	return &run, nil
}

func (r *Run) applyDefaults() {
	if r.Format == "" {
		r.Format = DefaultFormat
	}
	if r.Output == "" {
		r.Output = "."
	}
	for i := range r.Jobs {
		j := &r.Jobs[i]
		if j.Name == "" {
			j.Name = j.Function
		}
		if j.Domain.Resolution == 0 {
			j.Domain.Resolution = DefaultResolution
		}
		if j.Tolerance == 0 {
			j.Tolerance = DefaultTolerance
		}
		if len(j.Orders) == 0 {
			j.Orders = []int{0}
		}
	}
}

// Validate reports every problem in the run at once.
func (r *Run) Validate() error {
	var errs []error
	if r.Format != "npy" && r.Format != "html" {
		errs = append(errs, fmt.Errorf("format %q is neither npy nor html", r.Format))
	}
	if len(r.Jobs) == 0 {
		errs = append(errs, errors.New("no jobs"))
	}

	seen := make(map[string]bool, len(r.Jobs))
	for _, j := range r.Jobs {
		if seen[j.Name] {
			errs = append(errs, fmt.Errorf("job %q: duplicate name", j.Name))
		}
		seen[j.Name] = true

		if err := j.validate(); err != nil {
			errs = append(errs, fmt.Errorf("job %q: %w", j.Name, err))
		}
	}
	return errors.Join(errs...)
}

func (j Job) validate() error {
	if !slices.Contains(Functions, j.Function) {
		return fmt.Errorf("%w %q", ErrUnknownFunction, j.Function)
	}

	d := j.Domain
	switch {
	case d.Resolution < 2:
		return fmt.Errorf("%w: resolution %d", ErrInvalidDomain, d.Resolution)
	case j.Tolerance <= 0:
		return fmt.Errorf("tolerance %g must be positive", j.Tolerance)
	case !d.TwoDimensional():
		if d.Lower >= d.Upper {
			return fmt.Errorf("%w: lower %g not below upper %g", ErrInvalidDomain, d.Lower, d.Upper)
		}
	case len(d.X) != 2 || len(d.Y) != 2:
		return fmt.Errorf("%w: x and y need exactly two limits", ErrInvalidDomain)
	case j.Function == "jn" || j.Function == "besselintegral":
		return fmt.Errorf("%w: %s takes real arguments only", ErrInvalidDomain, j.Function)
	}

	if j.Function == "k" && !d.insideUnitDisc() {
		return fmt.Errorf("%w: k needs |x| < 1 over the whole domain", ErrInvalidDomain)
	}
	return nil
}

func (d Domain) insideUnitDisc() bool {
	if !d.TwoDimensional() {
		return max(-d.Lower, d.Upper) < 1
	}
	x := max(math.Abs(d.X[0]), math.Abs(d.X[1]))
	y := max(math.Abs(d.Y[0]), math.Abs(d.Y[1]))
	return x*x+y*y < 1
}
