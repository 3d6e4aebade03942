package main

import (
	"os"

	"pseudo/interpreter-go/cmd/pseudo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
