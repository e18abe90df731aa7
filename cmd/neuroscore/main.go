// cmd/neuroscore/main.go
package main

import (
	cmd "github.com/mwiater/neuroscore/internal/cli"
)

// main starts the neuroscore CLI application by delegating to the
// cobra root command defined in the neuroscore package. It does not
// take any arguments and does not return a value.
func main() {
	cmd.Execute()
}
