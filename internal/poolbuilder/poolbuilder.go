// Package poolbuilder turns a loaded config.Config into a concrete backend
// pool, shared by cmd/routerd and cmd/admind so both build the same kind of
// pool from the same configuration.
package poolbuilder

import (
	"github.com/fighterleslie/dbrouter/internal/backend"
	"github.com/fighterleslie/dbrouter/internal/config"
	"github.com/fighterleslie/dbrouter/internal/router"
)

// Build constructs concrete backends from the configured pool.
func Build(cfg *config.Config) []router.Backend {
	backends := make([]router.Backend, 0, len(cfg.Backends))
	for _, bc := range cfg.Backends {
		srv := &backend.Server{Address: bc.Host, Port: bc.Port, Weight: bc.Weight}
		switch bc.Role {
		case "master":
			srv.SetRole(backend.RoleMaster)
		case "relay":
			srv.SetRole(backend.RoleRelay)
		default:
			srv.SetRole(backend.RoleSlave)
		}
		backends = append(backends, backend.New(bc.ID, srv))
	}
	return backends
}
