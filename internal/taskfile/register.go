package taskfile

import (
	"fmt"

	"github.com/alexisbeaulieu97/forge/internal/actions"
	"github.com/alexisbeaulieu97/forge/internal/engine"
	"github.com/alexisbeaulieu97/forge/internal/task"
)

// Register walks doc and registers one task per TaskDef on eng, wiring
// its action from internal/actions per RunSpec.Type. It is a pure
// translator: every task still passes through eng.AddTask, so duplicate
// names and dependency validation behave exactly as the programmatic API.
func Register(doc *Document, eng *engine.Engine) error {
	for _, def := range doc.Tasks {
		action, err := buildAction(def.Run)
		if err != nil {
			return fmt.Errorf("taskfile: task %q: %w", def.Name, err)
		}

		b := task.NewBuilder(def.Name).DependsOn(def.DependsOn...).Does(action)
		if err := eng.AddTask(b); err != nil {
			return fmt.Errorf("taskfile: task %q: %w", def.Name, err)
		}
	}
	return nil
}

func buildAction(run RunSpec) (task.Action, error) {
	switch run.Type {
	case "command":
		return actions.Shell(run.Command), nil
	case "copy":
		return actions.Copy(run.Src, run.Dst), nil
	case "symlink":
		return actions.Symlink(run.Target, run.Link), nil
	case "template":
		return actions.Template(run.Src, run.Dst, run.Vars), nil
	case "line_in_file":
		opts := []actions.LineOption{}
		if run.Match != "" {
			opts = append(opts, actions.WithMatch(run.Match))
		}
		if run.Absent {
			opts = append(opts, actions.Absent())
		}
		return actions.LineInFile(run.File, run.Line, opts...), nil
	case "git_clone":
		opts := []actions.GitOption{}
		if run.Branch != "" {
			opts = append(opts, actions.WithBranch(run.Branch))
		}
		if run.Depth > 0 {
			opts = append(opts, actions.WithDepth(run.Depth))
		}
		return actions.GitClone(run.URL, run.Dst, opts...), nil
	default:
		return nil, fmt.Errorf("unknown run type %q", run.Type)
	}
}
