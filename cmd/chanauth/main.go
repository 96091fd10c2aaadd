package main

import (
	"os"

	"github.com/packfox/chanauth/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
