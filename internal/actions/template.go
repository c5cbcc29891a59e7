package actions

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/alexisbeaulieu97/forge/internal/buildctx"
	"github.com/alexisbeaulieu97/forge/internal/task"
)

// Template returns an Action that renders a text/template source file to
// dst with the given variables, creating parent directories as needed.
// Grounded on internal/plugins/template/template.go's render step, minus
// its hash-based idempotence check (actions have no separate Check phase).
func Template(src, dst string, vars map[string]string) task.Action {
	return func(ctx *buildctx.Context) error {
		srcPath := resolve(ctx.Dir, src)
		dstPath := resolve(ctx.Dir, dst)

		raw, err := os.ReadFile(srcPath)
		if err != nil {
			return fmt.Errorf("template: read source %s: %w", srcPath, err)
		}

		tmpl, err := template.New(filepath.Base(srcPath)).Parse(string(raw))
		if err != nil {
			return fmt.Errorf("template: parse %s: %w", srcPath, err)
		}

		var buf strings.Builder
		if err := tmpl.Execute(&buf, vars); err != nil {
			return fmt.Errorf("template: render %s: %w", srcPath, err)
		}

		if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
			return fmt.Errorf("template: create destination directory: %w", err)
		}

		if err := os.WriteFile(dstPath, []byte(buf.String()), 0o644); err != nil {
			return fmt.Errorf("template: write %s: %w", dstPath, err)
		}

		if ctx.Logger != nil {
			ctx.Logger.Debug().Str("src", srcPath).Str("dst", dstPath).Msg("template rendered")
		}
		return nil
	}
}
