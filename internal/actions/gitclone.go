package actions

import (
	"errors"
	"fmt"
	"os"

	git "github.com/go-git/go-git/v5"

	"github.com/alexisbeaulieu97/forge/internal/buildctx"
	"github.com/alexisbeaulieu97/forge/internal/task"
)

// GitOption configures a GitClone action.
type GitOption func(*git.CloneOptions)

// WithBranch checks out the given branch after cloning. The name is
// resolved as refs/heads/<branch>, so tag names are not accepted.
func WithBranch(branch string) GitOption {
	return func(o *git.CloneOptions) { o.ReferenceName = plumbingBranch(branch) }
}

// WithDepth performs a shallow clone.
func WithDepth(depth int) GitOption {
	return func(o *git.CloneOptions) { o.Depth = depth }
}

// GitClone returns an Action that clones url into dst, a no-op if dst is
// already a git repository. Grounded on internal/plugins/repo/repo.go's
// PlainOpen-then-PlainCloneContext idiom, narrowed to clone-only (no
// drift-correction against an existing remote).
func GitClone(url, dst string, opts ...GitOption) task.Action {
	return func(ctx *buildctx.Context) error {
		dstPath := resolve(ctx.Dir, dst)

		if _, err := git.PlainOpen(dstPath); err == nil {
			if ctx.Logger != nil {
				ctx.Logger.Debug().Str("dst", dstPath).Msg("repository already present")
			}
			return nil
		} else if !errors.Is(err, git.ErrRepositoryNotExists) {
			return fmt.Errorf("gitclone: inspect %s: %w", dstPath, err)
		}

		if err := os.MkdirAll(dstPath, 0o755); err != nil {
			return fmt.Errorf("gitclone: create destination directory: %w", err)
		}

		cloneOpts := &git.CloneOptions{URL: url}
		for _, opt := range opts {
			opt(cloneOpts)
		}

		if _, err := git.PlainCloneContext(ctx, dstPath, false, cloneOpts); err != nil {
			return fmt.Errorf("gitclone: %s -> %s: %w", url, dstPath, err)
		}

		if ctx.Logger != nil {
			ctx.Logger.Debug().Str("url", url).Str("dst", dstPath).Msg("repository cloned")
		}
		return nil
	}
}
