package main

import (
	"os"

	"github.com/rollingthunder/specfun/cmd/specfun/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
