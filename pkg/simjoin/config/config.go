// Package config loads and validates the driver-level options a join is
// run with, the external "configuration" collaborator of spec.md §6.
package config

import (
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/kittclouds/simjoin/pkg/simjoin"
	"github.com/kittclouds/simjoin/pkg/simjoin/simerr"
)

// JoinConfig carries every driver-level option from spec.md §6's
// configuration table.
type JoinConfig struct {
	SimMeasure string  `toml:"sim_measure"`
	Threshold  float64 `toml:"threshold"`
	CompOp     string  `toml:"comp_op"`
	AllowEmpty bool    `toml:"allow_empty"`

	OutSimScore bool `toml:"out_sim_score"`

	LOutAttrs  []string `toml:"l_out_attrs"`
	ROutAttrs  []string `toml:"r_out_attrs"`
	LOutPrefix string   `toml:"l_out_prefix"`
	ROutPrefix string   `toml:"r_out_prefix"`

	NJobs int `toml:"n_jobs"`

	QgramSize int `toml:"qgram_size"`
}

// Load reads path as TOML into a JoinConfig and validates it.
func Load(path string) (JoinConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return JoinConfig{}, simerr.New(simerr.InvalidConfig, path, "unreadable config file: "+err.Error())
	}

	var cfg JoinConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return JoinConfig{}, simerr.New(simerr.InvalidConfig, path, "malformed TOML: "+err.Error())
	}
	if err := cfg.Validate(); err != nil {
		return JoinConfig{}, err
	}
	return cfg, nil
}

// Measure resolves the configured sim_measure name to a simjoin.SimMeasure.
func (c JoinConfig) Measure() (simjoin.SimMeasure, bool) {
	switch c.SimMeasure {
	case "JACCARD":
		return simjoin.Jaccard, true
	case "COSINE":
		return simjoin.Cosine, true
	case "DICE":
		return simjoin.Dice, true
	case "OVERLAP":
		return simjoin.Overlap, true
	case "EDIT_DISTANCE":
		return simjoin.EditDistance, true
	default:
		return 0, false
	}
}

// Op resolves the configured comp_op symbol to a simjoin.CompOp.
func (c JoinConfig) Op() (simjoin.CompOp, bool) {
	switch c.CompOp {
	case ">=":
		return simjoin.GE, true
	case ">":
		return simjoin.GT, true
	case "=":
		return simjoin.EQ, true
	case "<=":
		return simjoin.LE, true
	case "<":
		return simjoin.LT, true
	default:
		return 0, false
	}
}

// Validate implements the "configuration failure surfaced before probing
// starts" rule of spec.md §4.8/§7: unknown measures or operators,
// unsupported (measure, comp_op) combinations, out-of-range thresholds, a
// missing qgram_size for EDIT_DISTANCE and a negative n_jobs are all
// rejected here rather than discovered mid-probe. The tokenizer itself is
// not part of JoinConfig; simjoin.NewDriver checks that EDIT_DISTANCE gets
// a q-gram tokenizer.
func (c JoinConfig) Validate() error {
	measure, ok := c.Measure()
	if !ok {
		return simerr.New(simerr.InvalidConfig, "sim_measure", "unknown measure "+c.SimMeasure)
	}

	op, ok := c.Op()
	if !ok {
		return simerr.New(simerr.InvalidConfig, "comp_op", "unknown comparison operator "+c.CompOp)
	}
	if !simjoin.CompOpAllowed(measure, op) {
		return simerr.New(simerr.InvalidConfig, "comp_op", "operator "+c.CompOp+" not allowed for "+c.SimMeasure)
	}

	switch measure {
	case simjoin.Overlap:
		if c.Threshold < 1 || c.Threshold != math.Trunc(c.Threshold) {
			return simerr.New(simerr.InvalidConfig, "threshold", "OVERLAP requires an integer threshold >= 1")
		}
	case simjoin.EditDistance:
		if c.Threshold < 1 || c.Threshold != math.Trunc(c.Threshold) {
			return simerr.New(simerr.InvalidConfig, "threshold", "EDIT_DISTANCE requires an integer threshold >= 1")
		}
		if c.QgramSize < 1 {
			return simerr.New(simerr.InvalidConfig, "qgram_size", "EDIT_DISTANCE requires qgram_size >= 1")
		}
	default:
		if c.Threshold <= 0 || c.Threshold > 1 {
			return simerr.New(simerr.InvalidConfig, "threshold", "fractional measures require 0 < threshold <= 1")
		}
	}

	if c.NJobs < 0 {
		return simerr.New(simerr.InvalidConfig, "n_jobs", "must be >= 0")
	}

	return nil
}
