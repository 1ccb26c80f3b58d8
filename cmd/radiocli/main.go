package main

import (
	"github.com/fieldlink/radiolink/pkg/cli/sh"

	_ "github.com/fieldlink/radiolink/pkg/cli/cmds/radio"
)

//go-build: CGO_ENABLED=0

func init() {
	sh.SetupFlags()
}

func main() {
	sh.Main()
}
