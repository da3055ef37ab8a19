// Idiomatic entrypoint for Cobra CLI that delegates handling to the root command in cmd/root.go.

package main

import (
	"github.com/hrevolve-go/hrevolve/cmd"
)

func main() {
	cmd.Execute()
}
