package main

import (
	"fmt"
	"os"

	"github.com/alexisbeaulieu97/forge/internal/logging"
)

func main() {
	logger, err := logging.New(logging.Options{Level: "info"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "forge: failed to create logger: %v\n", err)
		os.Exit(1)
	}

	app := &AppContext{Logger: logger}

	if err := newRootCmd(app).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
