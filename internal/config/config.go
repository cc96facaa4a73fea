// Package config loads the router's YAML configuration: the backend pool
// and the policy options spec.md 3 recognizes. Grounded on
// dmzoneill-ollama-proxy/pkg/pipeline's PipelineConfig/yaml.Unmarshal shape,
// with struct-tag validation via go-playground/validator/v10.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/fighterleslie/dbrouter/internal/router"
)

// BackendConfig describes one configured backend server.
type BackendConfig struct {
	ID     string  `yaml:"id" validate:"required"`
	Host   string  `yaml:"host" validate:"required"`
	Port   int     `yaml:"port" validate:"required,min=1,max=65535"`
	Weight float64 `yaml:"weight" validate:"min=0"`
	// Role seeds the initial replication role; the monitor subsystem is
	// expected to keep it current afterward ("master", "slave", "relay").
	Role string `yaml:"role" validate:"required,oneof=master slave relay"`
}

// Config is the top-level YAML configuration document.
type Config struct {
	// SlaveSelectionCriteria names one of the five selection policies.
	SlaveSelectionCriteria string `yaml:"slave_selection_criteria" validate:"required,oneof=LEAST_ROUTER_CONNECTIONS LEAST_GLOBAL_CONNECTIONS LEAST_BEHIND_MASTER LEAST_CURRENT_OPERATIONS ADAPTIVE_ROUTING"`
	// MaxSlaveConnections is the per-session slave quota; 0 disables it.
	MaxSlaveConnections int `yaml:"max_slave_connections" validate:"min=0"`
	// MasterAcceptsReads makes the master itself eligible as a read source.
	MasterAcceptsReads bool `yaml:"master_accepts_reads"`
	// MasterFailureMode names one of the three master-failure modes.
	MasterFailureMode string `yaml:"master_failure_mode" validate:"required,oneof=FAIL_INSTANTLY FAIL_ON_WRITE ERROR_ON_WRITE"`
	// Workers is the size of the fixed worker pool (spec.md 5).
	Workers int `yaml:"workers" validate:"min=1"`
	// Backends is the configured backend pool.
	Backends []BackendConfig `yaml:"backends" validate:"required,min=1,dive"`
}

var validate = validator.New()

// Load reads and validates a YAML configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Policy maps the configured policy name to router.Policy.
func (c *Config) Policy() router.Policy {
	switch c.SlaveSelectionCriteria {
	case "LEAST_ROUTER_CONNECTIONS":
		return router.LeastRouterConnections
	case "LEAST_GLOBAL_CONNECTIONS":
		return router.LeastGlobalConnections
	case "LEAST_BEHIND_MASTER":
		return router.LeastBehindMaster
	case "LEAST_CURRENT_OPERATIONS":
		return router.LeastCurrentOperations
	case "ADAPTIVE_ROUTING":
		return router.AdaptiveRouting
	default:
		return router.LeastCurrentOperations
	}
}

// FailureMode maps the configured failure-mode name to router.MasterFailureMode.
func (c *Config) FailureMode() router.MasterFailureMode {
	switch c.MasterFailureMode {
	case "FAIL_INSTANTLY":
		return router.FailInstantly
	case "ERROR_ON_WRITE":
		return router.ErrorOnWrite
	default:
		return router.FailOnWrite
	}
}

// RouterConfig builds the router.Config this configuration implies.
func (c *Config) RouterConfig() router.Config {
	return router.Config{
		SlaveSelectionCriteria: c.Policy(),
		MaxSlaveConnections:    c.MaxSlaveConnections,
		MasterAcceptsReads:     c.MasterAcceptsReads,
		MasterFailureMode:      c.FailureMode(),
	}
}
