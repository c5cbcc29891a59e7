package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/forge/internal/engine"
	"github.com/alexisbeaulieu97/forge/internal/taskfile"
)

func loadEngine(flags *rootFlags) (*engine.Engine, *taskfile.Document, error) {
	doc, err := taskfile.Load(flags.file)
	if err != nil {
		return nil, nil, fmt.Errorf("load task file: %w", err)
	}

	var logger zerolog.Logger
	if flags.verbose {
		logger = zerolog.New(os.Stderr).Level(zerolog.TraceLevel).With().Timestamp().Logger()
	} else {
		logger = zerolog.Nop()
	}

	mode := engine.Sequential
	if doc.Settings.Parallel {
		mode = engine.GroupedParallel
	}

	eng := engine.New(mode, logger)
	if err := taskfile.Register(doc, eng); err != nil {
		return nil, nil, fmt.Errorf("register tasks: %w", err)
	}

	return eng, doc, nil
}
