package main

import (
	"fleetdispatch/cmd"

	"github.com/labstack/gommon/log"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatalf("fleetdispatch: %v", err)
	}
}
