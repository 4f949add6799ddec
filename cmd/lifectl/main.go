// Command lifectl runs the adaptive Life engine without a window: it loads
// patterns, runs batches of generations, reports backend switches and can
// expose Prometheus metrics while it works.
//
// Usage:
//
//	go run ./cmd/lifectl run --pattern gun.rle --iterations 5000
//	go run ./cmd/lifectl run --cols 256 --rows 256 --random 0.3 --metrics-addr :9090
//	go run ./cmd/lifectl compare --pattern acorn.rle --iterations 500
//	go run ./cmd/lifectl parse gun.rle
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
