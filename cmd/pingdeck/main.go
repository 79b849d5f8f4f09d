package main

import "pingdeck/internal/cli"

// Version is set via ldflags at build time:
//
//	go build -ldflags "-X main.version=1.0.0"
var version = "dev"

func main() {
	cli.SetVersionInfo(version)
	cli.Execute()
}
