package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fighterleslie/dbrouter/internal/config"
	"github.com/fighterleslie/dbrouter/internal/logging"
	"github.com/fighterleslie/dbrouter/internal/metrics"
	"github.com/fighterleslie/dbrouter/internal/poolbuilder"
	"github.com/fighterleslie/dbrouter/internal/router"
	"github.com/fighterleslie/dbrouter/internal/session"
	"github.com/fighterleslie/dbrouter/internal/workerpool"
)

var (
	logLevel   string
	sessionIDs []int64
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Bring up master + slave connections for one or more sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Init(logLevel, false); err != nil {
			return fmt.Errorf("init logging: %w", err)
		}
		defer logging.Sync()

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		config.ApplyEnvOverrides(cfg)

		pool, err := workerpool.New(cfg.Workers)
		if err != nil {
			return fmt.Errorf("build worker pool: %w", err)
		}

		backends := poolbuilder.Build(cfg)
		routerCfg := cfg.RouterConfig()

		ids := sessionIDs
		if len(ids) == 0 {
			ids = []int64{1}
		}

		for _, id := range ids {
			sess := session.New(uint64(id), pool)
			result, err := router.SelectConnectBackendServers(
				sess, backends, session.CommandList(0), router.ConnectAll, routerCfg, logging.Logger)
			if err != nil {
				logging.Error("bring-up failed", zap.Int64("session_id", id), zap.Error(err))
				metrics.RecordMasterGateFailure(err.Error())
				continue
			}

			connected := 0
			for _, b := range backends {
				metrics.SetBackendInUse(b.Name(), b.InUse())
				if b.InUse() && (b.IsSlave() || b.IsRelay()) {
					connected++
				}
			}
			metrics.RecordSlavesConnected(routerCfg.SlaveSelectionCriteria.String(), connected)

			masterName := "<none>"
			if result.Master != nil {
				masterName = result.Master.Name()
			}
			logging.Info("bring-up complete",
				zap.Int64("session_id", id),
				zap.String("master", masterName),
				zap.Int("expected_responses", result.ExpectedResponses),
				zap.Int("worker", sess.WorkerID()),
			)
		}

		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	runCmd.Flags().Int64SliceVar(&sessionIDs, "session", nil, "Session ID to bring up (repeatable); defaults to a single session")
}
