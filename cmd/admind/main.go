// Command admind is the read-only admin HTTP surface for the backend pool:
// /healthz, /backends, and Prometheus /metrics. Adapted from the teacher's
// cmd/server/http_server.go (gin.Default(), flag.Int for the port, r.Run) —
// repurposed from a pi-computation benchmark handler to a backend-state
// dump. spec.md 1 explicitly excludes the admin interface from the core;
// this binary only calls the core's exported types, never the other way
// around.
package main

import (
	"flag"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/fighterleslie/dbrouter/internal/config"
	"github.com/fighterleslie/dbrouter/internal/logging"
	"github.com/fighterleslie/dbrouter/internal/poolbuilder"
	"github.com/fighterleslie/dbrouter/internal/router"
)

func backendStatus(b router.Backend) gin.H {
	ref := b.Ref()
	return gin.H{
		"name":        b.Name(),
		"address":     b.Address(),
		"is_master":   b.IsMaster(),
		"is_slave":    b.IsSlave(),
		"is_relay":    b.IsRelay(),
		"in_use":      b.InUse(),
		"can_connect": b.CanConnect(),
		"connections": ref.Connections,
		"weight":      ref.ServerWeight,
		"stats": gin.H{
			"n_current":             ref.Stats.NCurrent,
			"n_current_ops":         ref.Stats.NCurrentOps,
			"rlag":                  ref.Stats.Rlag,
			"response_time_average": ref.Stats.ResponseTimeAverage,
		},
	}
}

func backendsHandler(backends []router.Backend) gin.HandlerFunc {
	return func(c *gin.Context) {
		out := make([]gin.H, 0, len(backends))
		for _, b := range backends {
			out = append(out, backendStatus(b))
		}
		c.JSON(http.StatusOK, gin.H{"backends": out})
	}
}

func healthzHandler(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func main() {
	port := flag.Int("p", 8081, "Admin HTTP port")
	configPath := flag.String("config", "config.yaml", "Path to the YAML configuration file")
	flag.Parse()

	if err := logging.Init("info", false); err != nil {
		panic(err)
	}
	defer logging.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Fatal("failed to load config", zap.Error(err))
		return
	}
	backends := poolbuilder.Build(cfg)

	r := gin.Default()
	r.GET("/healthz", healthzHandler)
	r.GET("/backends", backendsHandler(backends))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := ":" + strconv.Itoa(*port)
	logging.Info("admin HTTP listening")
	_ = r.Run(addr)
}
