// Package cmn provides common types and utilities for all recsort packages
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cmn

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/recsort/recsort/cmn/cos"
)

// defaults
const (
	DefaultDataDir     = "data"
	DefaultPattern     = "*.csv"
	DefaultTop         = 50
	DefaultRepeats     = 5
	DefaultExchangeCap = 10000
)

var (
	DefaultSizes      = []int{1000, 2500, 5000, 10000, 20000, 50000}
	DefaultAttributes = []string{"Close", "Volume", "Company"}
)

type (
	Config struct {
		Log    LogConf    `json:"log" yaml:"log"`
		Sort   SortConf   `json:"sort" yaml:"sort"`
		Ingest IngestConf `json:"ingest" yaml:"ingest"`
		Bench  BenchConf  `json:"bench" yaml:"bench"`
	}
	LogConf struct {
		Dir      string `json:"dir" yaml:"dir"`             // log directory (default: $TMPDIR/recsortlogs)
		ToStderr bool   `json:"to_stderr" yaml:"to_stderr"` // log to standard error instead of files
		MaxSize  int64  `json:"max_size" yaml:"max_size"`   // size that triggers log rotation
	}
	SortConf struct {
		Algorithm AlgoConf `json:"algorithm" yaml:"algorithm"`
		Top       int      `json:"top" yaml:"top"` // rows to show in the sorted preview
	}
	// algorithm name (and aliases) are resolved by the sorting package
	AlgoConf struct {
		Kind       string `json:"kind" yaml:"kind"`             // empty: default algorithm
		Decreasing bool   `json:"decreasing" yaml:"decreasing"` // descending order
		Seed       string `json:"seed,omitempty" yaml:"seed,omitempty"`
	}
	IngestConf struct {
		Dir         string `json:"dir" yaml:"dir"`
		Pattern     string `json:"pattern" yaml:"pattern"`         // glob, e.g. "*.csv"
		Concurrency int    `json:"concurrency" yaml:"concurrency"` // files loaded in parallel (default: num CPUs)
	}
	BenchConf struct {
		Sizes       []int        `json:"sizes" yaml:"sizes"`
		Attributes  []string     `json:"attributes" yaml:"attributes"`
		Repeats     int          `json:"repeats" yaml:"repeats"`
		ExchangeCap int          `json:"exchange_cap" yaml:"exchange_cap"` // skip exchange sort above this n
		Timeout     cos.Duration `json:"timeout" yaml:"timeout"`           // zero: no timeout
	}
)

func DefaultConfig() *Config {
	config := &Config{}
	if err := config.Validate(); err != nil {
		panic(err) // (unlikely)
	}
	return config
}

// LoadConfig reads JSON (.json) or YAML (.yaml, .yml) and applies defaults.
func LoadConfig(fpath string) (*Config, error) {
	b, err := os.ReadFile(fpath)
	if err != nil {
		if cos.IsNotExist(err) {
			return nil, cos.NewErrNotFound(nil, "config "+fpath)
		}
		return nil, err
	}
	config := &Config{}
	switch ext := strings.ToLower(filepath.Ext(fpath)); ext {
	case ".json":
		err = jsoniter.Unmarshal(b, config)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, config)
	default:
		return nil, errors.Errorf("config %q: unsupported format %q (expecting .json, .yaml, or .yml)", fpath, ext)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %q", fpath)
	}
	if err := config.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %q", fpath)
	}
	return config, nil
}

func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.Sort.Validate(); err != nil {
		return err
	}
	if err := c.Ingest.Validate(); err != nil {
		return err
	}
	return c.Bench.Validate()
}

func (c *LogConf) Validate() error {
	if c.MaxSize < 0 {
		return errors.Errorf("log.max_size must be >= 0 (got %d)", c.MaxSize)
	}
	return nil
}

func (c *SortConf) Validate() error {
	if c.Top < 0 {
		return errors.Errorf("sort.top must be >= 0 (got %d)", c.Top)
	}
	if c.Top == 0 {
		c.Top = DefaultTop
	}
	return c.Algorithm.Validate()
}

func (c *AlgoConf) Validate() error {
	c.Kind = strings.ToLower(strings.TrimSpace(c.Kind))
	if c.Seed == "" {
		return nil
	}
	if _, err := strconv.ParseInt(c.Seed, 10, 64); err != nil {
		return errors.Errorf("sort.algorithm.seed: invalid seed %q (expecting integer value)", c.Seed)
	}
	return nil
}

func (c *IngestConf) Validate() error {
	if c.Dir == "" {
		c.Dir = DefaultDataDir
	}
	if c.Pattern == "" {
		c.Pattern = DefaultPattern
	}
	if _, err := filepath.Match(c.Pattern, ""); err != nil {
		return errors.Wrapf(err, "invalid ingest.pattern %q", c.Pattern)
	}
	switch {
	case c.Concurrency < 0:
		return errors.Errorf("ingest.concurrency must be >= 0 (got %d)", c.Concurrency)
	case c.Concurrency == 0:
		c.Concurrency = runtime.NumCPU()
	}
	return nil
}

func (c *BenchConf) Validate() error {
	if len(c.Sizes) == 0 {
		c.Sizes = append([]int(nil), DefaultSizes...)
	}
	for _, n := range c.Sizes {
		if n <= 0 {
			return errors.Errorf("bench.sizes: invalid size %d (must be > 0)", n)
		}
	}
	if len(c.Attributes) == 0 {
		c.Attributes = append([]string(nil), DefaultAttributes...)
	}
	switch {
	case c.Repeats < 0:
		return errors.Errorf("bench.repeats must be >= 0 (got %d)", c.Repeats)
	case c.Repeats == 0:
		c.Repeats = DefaultRepeats
	}
	switch {
	case c.ExchangeCap < 0:
		return errors.Errorf("bench.exchange_cap must be >= 0 (got %d)", c.ExchangeCap)
	case c.ExchangeCap == 0:
		c.ExchangeCap = DefaultExchangeCap
	}
	if c.Timeout < 0 {
		return errors.Errorf("bench.timeout must be >= 0 (got %s)", c.Timeout)
	}
	return nil
}
