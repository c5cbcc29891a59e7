package actions

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexisbeaulieu97/forge/internal/buildctx"
	"github.com/alexisbeaulieu97/forge/internal/task"
)

// Symlink returns an Action that idempotently ensures link points at
// target: a no-op if it already does, replaced if it points elsewhere,
// created if absent. Grounded on internal/plugins/symlink/symlink.go's
// Check-then-Apply idiom, collapsed into one step since actions have no
// separate evaluate phase.
func Symlink(target, link string) task.Action {
	return func(ctx *buildctx.Context) error {
		linkPath := resolve(ctx.Dir, link)

		if info, err := os.Lstat(linkPath); err == nil {
			if info.Mode()&os.ModeSymlink != 0 {
				current, err := os.Readlink(linkPath)
				if err == nil && current == target {
					return nil // already correct
				}
			}
			if err := os.Remove(linkPath); err != nil {
				return fmt.Errorf("symlink: remove existing %s: %w", linkPath, err)
			}
		}

		if err := os.MkdirAll(filepath.Dir(linkPath), 0o755); err != nil {
			return fmt.Errorf("symlink: create parent directory: %w", err)
		}

		if err := os.Symlink(target, linkPath); err != nil {
			return fmt.Errorf("symlink: %s -> %s: %w", linkPath, target, err)
		}

		if ctx.Logger != nil {
			ctx.Logger.Debug().Str("link", linkPath).Str("target", target).Msg("symlink created")
		}
		return nil
	}
}
