package config

import (
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/fighterleslie/dbrouter/internal/logging"
)

// ApplyEnvOverrides applies environment variable overrides to cfg, in the
// style of dmzoneill-ollama-proxy/pkg/config/env.go's ApplyEnvOverrides.
func ApplyEnvOverrides(cfg *Config) {
	if val := os.Getenv("DBROUTER_MAX_SLAVE_CONNECTIONS"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			logging.Info("override from environment",
				zap.String("var", "DBROUTER_MAX_SLAVE_CONNECTIONS"),
				zap.Int("value", n))
			cfg.MaxSlaveConnections = n
		} else {
			logging.Warn("invalid DBROUTER_MAX_SLAVE_CONNECTIONS",
				zap.String("value", val), zap.Error(err))
		}
	}

	if val := os.Getenv("DBROUTER_MASTER_ACCEPTS_READS"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			logging.Info("override from environment",
				zap.String("var", "DBROUTER_MASTER_ACCEPTS_READS"),
				zap.Bool("value", b))
			cfg.MasterAcceptsReads = b
		} else {
			logging.Warn("invalid DBROUTER_MASTER_ACCEPTS_READS",
				zap.String("value", val), zap.Error(err))
		}
	}

	if val := os.Getenv("DBROUTER_SLAVE_SELECTION_CRITERIA"); val != "" {
		logging.Info("override from environment",
			zap.String("var", "DBROUTER_SLAVE_SELECTION_CRITERIA"),
			zap.String("value", val))
		cfg.SlaveSelectionCriteria = val
	}

	if val := os.Getenv("DBROUTER_MASTER_FAILURE_MODE"); val != "" {
		logging.Info("override from environment",
			zap.String("var", "DBROUTER_MASTER_FAILURE_MODE"),
			zap.String("value", val))
		cfg.MasterFailureMode = val
	}
}
