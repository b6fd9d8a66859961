package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/go-faster/errors"
)

// maxQubits caps the register size the TUI will grow to. The statevector
// doubles per qubit, so this keeps a run comfortably interactive.
const maxQubits = 12

// Config holds startup defaults. Flags override config values, config
// values override the built-ins.
type Config struct {
	Qubits int    `toml:"qubits"`
	Shots  int    `toml:"shots"`
	Seed   int64  `toml:"seed"`
	Oracle string `toml:"oracle"`
	Rule   string `toml:"rule"`
}

func DefaultConfig() Config {
	return Config{
		Qubits: 3,
		Shots:  1024,
		Oracle: "both",
		Rule:   "exact",
	}
}

// LoadConfig reads a TOML config file over the defaults. An empty path
// returns the defaults untouched.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrap(err, "decode config")
	}
	if err := cfg.validate(); err != nil {
		return cfg, errors.Wrap(err, path)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Qubits < 1 || c.Qubits > maxQubits {
		return fmt.Errorf("qubits must be in [1, %d], got %d", maxQubits, c.Qubits)
	}
	if c.Shots < 1 {
		return fmt.Errorf("shots must be positive, got %d", c.Shots)
	}
	if c.Oracle != "both" {
		if _, err := ParseOracleType(c.Oracle); err != nil {
			return err
		}
	}
	if _, err := ParseVerifyRule(c.Rule); err != nil {
		return err
	}
	return nil
}
