package main

import "github.com/thinktide/statspan/internal/cli"

// main delegates to [cli.Execute], which runs the single statspan
// invocation and exits non-zero on any failure.
func main() {
	cli.Execute()
}
