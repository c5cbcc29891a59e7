package actions

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/alexisbeaulieu97/forge/internal/buildctx"
	"github.com/alexisbeaulieu97/forge/internal/task"
)

// LineOption configures a LineInFile action.
type LineOption func(*lineConfig)

type lineConfig struct {
	match  *regexp.Regexp
	absent bool
}

// WithMatch replaces the first line matching pattern instead of appending.
// Invalid patterns are silently ignored, matching none and falling back to
// append-if-absent.
func WithMatch(pattern string) LineOption {
	return func(c *lineConfig) {
		if re, err := regexp.Compile(pattern); err == nil {
			c.match = re
		}
	}
}

// Absent removes the line instead of ensuring it is present.
func Absent() LineOption {
	return func(c *lineConfig) { c.absent = true }
}

// LineInFile returns an Action that ensures line is present (or, with
// Absent, removed) in the file at path, rewriting the file only when the
// content actually changes. Grounded on
// internal/plugins/lineinfile/lineinfile.go's present/absent state
// handling, narrowed to first-match-replace semantics (no
// on_multiple_matches policy).
func LineInFile(path, line string, opts ...LineOption) task.Action {
	cfg := lineConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(ctx *buildctx.Context) error {
		filePath := resolve(ctx.Dir, path)

		raw, err := os.ReadFile(filePath)
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("lineinfile: read %s: %w", filePath, err)
		}

		var lines []string
		if len(raw) > 0 {
			lines = strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
		}

		updated, changed := applyLine(lines, line, cfg)
		if !changed {
			return nil
		}

		content := strings.Join(updated, "\n")
		if len(updated) > 0 {
			content += "\n"
		}

		if err := os.WriteFile(filePath, []byte(content), 0o644); err != nil {
			return fmt.Errorf("lineinfile: write %s: %w", filePath, err)
		}

		if ctx.Logger != nil {
			ctx.Logger.Debug().Str("file", filePath).Msg("line updated")
		}
		return nil
	}
}

func applyLine(lines []string, line string, cfg lineConfig) ([]string, bool) {
	matchIdx := -1
	for i, l := range lines {
		if cfg.match != nil && cfg.match.MatchString(l) {
			matchIdx = i
			break
		}
		if cfg.match == nil && l == line {
			matchIdx = i
			break
		}
	}

	if cfg.absent {
		if matchIdx == -1 {
			return lines, false
		}
		return append(append([]string{}, lines[:matchIdx]...), lines[matchIdx+1:]...), true
	}

	if matchIdx != -1 {
		if lines[matchIdx] == line {
			return lines, false
		}
		out := append([]string{}, lines...)
		out[matchIdx] = line
		return out, true
	}

	return append(append([]string{}, lines...), line), true
}
