package main

import (
	"fmt"
	"os"

	"github.com/rezonia/kude/cmd/kude/cmd"
	"github.com/rezonia/kude/internal/model"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(model.ExitCode(err))
	}
}
