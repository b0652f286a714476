package gameconfig

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// InputFormat names the arena-loading strategy.
type InputFormat string

const (
	FormatPGSolver   InputFormat = "pgsolver"
	FormatGeneralPGS InputFormat = "generalized-pgsolver"
	FormatHOAProduct InputFormat = "hoa-product"
)

// ValidInputFormats lists every accepted InputFormat value.
var ValidInputFormats = []InputFormat{FormatPGSolver, FormatGeneralPGS, FormatHOAProduct}

// Algorithm names the solving strategy.
type Algorithm string

const (
	AlgoZielonka           Algorithm = "zielonka"
	AlgoZielonkaPartial    Algorithm = "zielonka-partial"
	AlgoGeneralizedParity  Algorithm = "gparity"
	AlgoGeneralizedPartial Algorithm = "gparity-partial"

	// AlgoGeneralizedPartialMultiple re-invokes the generalized-Büchi
	// partial solver at the entry of every recursive step, rather than once
	// upfront. This is the default algorithm selected by the driver's -par
	// flag (see cmd/paritysolve).
	AlgoGeneralizedPartialMultiple Algorithm = "gparity-partial-multi"
)

// ValidAlgorithms lists every accepted Algorithm value.
var ValidAlgorithms = []Algorithm{
	AlgoZielonka, AlgoZielonkaPartial,
	AlgoGeneralizedParity, AlgoGeneralizedPartial, AlgoGeneralizedPartialMultiple,
}

// Backend selects which solver representation a run uses.
type Backend string

const (
	BackendBDD      Backend = "bdd"
	BackendExplicit Backend = "explicit"

	// BackendFBDD is the fully-symbolic representation: the driver's -fbdd
	// flag. It runs on the same bddengine-backed solvers as BackendBDD and
	// behaves identically to BackendBDD for every input format; for
	// hoa-product input, pgformat.LoadHOA and DPA.BuildGame build the game
	// with BDD operations only under either backend.
	BackendFBDD Backend = "fbdd"
)

// ValidBackends lists every accepted Backend value.
var ValidBackends = []Backend{BackendBDD, BackendExplicit, BackendFBDD}

// Config specifies a full realizability-solving run.
type Config struct {
	// Input is the arena source file.
	Input InputConfig `yaml:"input" json:"input"`

	// Algorithm selects the recursion used once the arena is loaded.
	Algorithm Algorithm `yaml:"algorithm" json:"algorithm"`

	// Backend selects the bddengine-symbolic or explicit-bitset solver.
	Backend Backend `yaml:"backend" json:"backend"`

	// Verbose enables per-round progress logging.
	Verbose bool `yaml:"verbose" json:"verbose"`

	// Visualization configures optional SVG export of the solved arena.
	Visualization *VisualizationConfig `yaml:"visualization,omitempty" json:"visualization,omitempty"`
}

// InputConfig describes where the arena comes from and how to read it.
type InputConfig struct {
	// Path is the arena file to read.
	Path string `yaml:"path" json:"path"`

	// Format selects the loader in pgformat.
	Format InputFormat `yaml:"format" json:"format"`

	// ProductWith, when Format is hoa-product, is a second HOA file to
	// combine with Path via DPA.Product before solving.
	ProductWith string `yaml:"productWith,omitempty" json:"productWith,omitempty"`

	// InputProps and OutputProps partition the atomic propositions used by
	// DPA.BuildGame when Format is hoa-product.
	InputProps  []string `yaml:"inputProps,omitempty" json:"inputProps,omitempty"`
	OutputProps []string `yaml:"outputProps,omitempty" json:"outputProps,omitempty"`
}

// VisualizationConfig configures vizexport.
type VisualizationConfig struct {
	// Path is the SVG file to write.
	Path string `yaml:"path" json:"path"`

	// Width and Height are the canvas dimensions in pixels.
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`

	// ShowLabels draws each vertex's id next to its node.
	ShowLabels bool `yaml:"showLabels" json:"showLabels"`
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gameconfig: reading config file: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses and validates YAML configuration from memory.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("gameconfig: parsing YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("gameconfig: validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks every configuration constraint, returning the first
// violation found.
func (c *Config) Validate() error {
	if err := c.Input.Validate(); err != nil {
		return fmt.Errorf("input: %w", err)
	}
	if !oneOf(string(c.Algorithm), asStrings(ValidAlgorithms)) {
		return fmt.Errorf("invalid algorithm %q, must be one of %v", c.Algorithm, ValidAlgorithms)
	}
	if !oneOf(string(c.Backend), asStrings(ValidBackends)) {
		return fmt.Errorf("invalid backend %q, must be one of %v", c.Backend, ValidBackends)
	}
	if c.Backend == BackendExplicit {
		switch c.Algorithm {
		case AlgoGeneralizedParity, AlgoGeneralizedPartial, AlgoGeneralizedPartialMultiple:
			return errors.New("the explicit backend does not implement generalized-parity recursion")
		}
	}
	if c.Visualization != nil {
		if err := c.Visualization.Validate(); err != nil {
			return fmt.Errorf("visualization: %w", err)
		}
	}
	return nil
}

// Validate checks InputConfig constraints.
func (i *InputConfig) Validate() error {
	if i.Path == "" {
		return errors.New("path must not be empty")
	}
	if !oneOf(string(i.Format), asStrings(ValidInputFormats)) {
		return fmt.Errorf("invalid format %q, must be one of %v", i.Format, ValidInputFormats)
	}
	if i.Format == FormatHOAProduct {
		if len(i.InputProps) == 0 && len(i.OutputProps) == 0 {
			return errors.New("hoa-product input requires at least one of inputProps/outputProps")
		}
	} else if i.ProductWith != "" {
		return errors.New("productWith is only valid for hoa-product input")
	}
	return nil
}

// Validate checks VisualizationConfig constraints.
func (v *VisualizationConfig) Validate() error {
	if v.Path == "" {
		return errors.New("path must not be empty")
	}
	if v.Width < 0 || v.Height < 0 {
		return errors.New("width and height must not be negative")
	}
	return nil
}

// ToYAML serializes the config back to YAML.
func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Hash returns a deterministic digest of the configuration, useful for
// naming cached solver runs.
func (c *Config) Hash() ([]byte, error) {
	data, err := c.ToYAML()
	if err != nil {
		return nil, err
	}
	h := sha256.Sum256(data)
	return h[:], nil
}

func oneOf(v string, valid []string) bool {
	for _, s := range valid {
		if v == s {
			return true
		}
	}
	return false
}

func asStrings[T ~string](vs []T) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return out
}
