package actions

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alexisbeaulieu97/forge/internal/buildctx"
	"github.com/alexisbeaulieu97/forge/internal/task"
)

// Copy returns an Action that copies a single file from src to dst,
// preserving the source's file mode. Paths are resolved relative to the
// Context's working directory when not absolute. Grounded on
// internal/plugins/copy/copy.go's Apply path, narrowed to the
// single-file case (no directory recursion in this revision).
func Copy(src, dst string) task.Action {
	return func(ctx *buildctx.Context) error {
		srcPath := resolve(ctx.Dir, src)
		dstPath := resolve(ctx.Dir, dst)

		srcInfo, err := os.Stat(srcPath)
		if err != nil {
			return fmt.Errorf("copy: stat source %s: %w", srcPath, err)
		}
		if srcInfo.IsDir() {
			return fmt.Errorf("copy: source %s is a directory, not supported", srcPath)
		}

		if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
			return fmt.Errorf("copy: create destination directory: %w", err)
		}

		in, err := os.Open(srcPath)
		if err != nil {
			return fmt.Errorf("copy: open source: %w", err)
		}
		defer in.Close()

		out, err := os.OpenFile(dstPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, srcInfo.Mode())
		if err != nil {
			return fmt.Errorf("copy: open destination: %w", err)
		}
		defer out.Close()

		if _, err := io.Copy(out, in); err != nil {
			return fmt.Errorf("copy: %s -> %s: %w", srcPath, dstPath, err)
		}

		if err := out.Chmod(srcInfo.Mode()); err != nil {
			return fmt.Errorf("copy: set mode on %s: %w", dstPath, err)
		}

		if ctx.Logger != nil {
			ctx.Logger.Debug().Str("src", srcPath).Str("dst", dstPath).Msg("copied file")
		}
		return nil
	}
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) || dir == "" {
		return path
	}
	return filepath.Join(dir, path)
}
