package main

import (
	"os"

	"gobasic/cmd/gobasic/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
