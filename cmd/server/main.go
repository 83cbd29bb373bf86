// Package main implements the taskio-server binary, which serves the Taskio
// task and work-log API over HTTP.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
