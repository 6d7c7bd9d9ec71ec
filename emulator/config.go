package emulator

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/intcode/intcode"
)

// Config is the YAML description of a run.
type Config struct {
	// Dialect is the machine generation: arithmetic, minimal or extended.
	// Defaults to extended.
	Dialect string `yaml:"dialect,omitempty"`

	// Strict faults on any instruction but halt after a non-zero output.
	// Defaults to true for the minimal dialect only.
	Strict *bool `yaml:"strict,omitempty"`

	// StepLimit aborts runs longer than this many steps. 0 is no limit.
	StepLimit int `yaml:"step_limit,omitempty"`

	Verbose bool `yaml:"verbose,omitempty"`
	Trace   bool `yaml:"trace,omitempty"`

	// Input values for the store input instruction. A single value is
	// supplied to every read.
	Input []int `yaml:"input,omitempty"`

	// Patch lists 'address=value' memory patches.
	Patch []string `yaml:"patch,omitempty"`
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (cfg *Config, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	cfg, err = ParseConfig(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
	}

	return
}

// ParseConfig parses a YAML configuration. Unknown keys are rejected.
func ParseConfig(in io.Reader) (cfg *Config, err error) {
	cfg = &Config{}

	dec := yaml.NewDecoder(in)
	dec.KnownFields(true)
	err = dec.Decode(cfg)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	if err != nil {
		cfg = nil
		return
	}

	_, err = cfg.dialect()
	if err != nil {
		cfg = nil
	}

	return
}

func (cfg *Config) dialect() (dialect intcode.Dialect, err error) {
	if len(cfg.Dialect) == 0 {
		dialect = intcode.DIALECT_EXTENDED
		return
	}

	dialect, err = intcode.ParseDialect(cfg.Dialect)
	if err != nil {
		err = errors.Join(ErrConfigDialect, err)
	}

	return
}

// Emulator creates an emulator for the configuration.
func (cfg *Config) Emulator() (emu *Emulator, err error) {
	dialect, err := cfg.dialect()
	if err != nil {
		return
	}

	emu = NewEmulator(dialect)
	if cfg.Strict != nil {
		emu.Strict = *cfg.Strict
	}
	emu.StepLimit = cfg.StepLimit
	emu.Verbose = cfg.Verbose
	emu.Tracing = cfg.Trace
	emu.Patch = append(emu.Patch, cfg.Patch...)

	return
}
