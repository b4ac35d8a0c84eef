package main

import (
	"os"

	"github.com/kmarens/famsched/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
