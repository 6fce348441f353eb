package main

import (
	"os"

	"github.com/bevuihoc/bevuihoc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
