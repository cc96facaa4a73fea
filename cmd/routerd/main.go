// Command routerd runs the backend selection core against a configured
// pool, in the teacher's "load balancer daemon" spirit but restructured as
// a cobra CLI the way inference-sim's cmd/root.go is.
package main

import "github.com/fighterleslie/dbrouter/cmd/routerd/cmd"

func main() {
	cmd.Execute()
}
