package main

import (
	"os"

	"github.com/xab-mack/stylusaudit/internal/app"
)

func main() {
	if err := app.BuildRoot().Execute(); err != nil {
		os.Exit(1)
	}
}
