// Package taskfile parses a declarative YAML task list into programmatic
// engine registrations. It is a convenience front-end over
// internal/engine's TaskBuilder API — it never touches the graph
// directly, and it cannot express criteria, error handlers, or finally
// hooks, which remain the programmatic API's province.
package taskfile

// Document is the root of a parsed task file.
type Document struct {
	Version  string    `yaml:"version" validate:"required"`
	Name     string    `yaml:"name" validate:"required,min=1,max=100"`
	Settings Settings  `yaml:"settings,omitempty"`
	Tasks    []TaskDef `yaml:"tasks" validate:"required,min=1,dive"`
}

// Settings holds document-wide execution parameters.
type Settings struct {
	Parallel        bool `yaml:"parallel,omitempty"`
	ContinueOnError bool `yaml:"continue_on_error,omitempty"`
}

// TaskDef describes one task entry.
type TaskDef struct {
	Name      string  `yaml:"name" validate:"required,task_name"`
	DependsOn []string `yaml:"depends_on,omitempty"`
	Run       RunSpec `yaml:"run" validate:"required"`
}

// RunSpec selects an internal/actions constructor and its parameters.
// Exactly the fields relevant to Type are consulted; others are ignored.
type RunSpec struct {
	Type    string            `yaml:"type" validate:"required,oneof=command copy symlink template line_in_file git_clone"`
	Command string            `yaml:"command,omitempty"`
	Src     string            `yaml:"src,omitempty"`
	Dst     string            `yaml:"dst,omitempty"`
	Target  string            `yaml:"target,omitempty"`
	Link    string            `yaml:"link,omitempty"`
	Vars    map[string]string `yaml:"vars,omitempty"`
	File    string            `yaml:"file,omitempty"`
	Line    string            `yaml:"line,omitempty"`
	Match   string            `yaml:"match,omitempty"`
	Absent  bool              `yaml:"absent,omitempty"`
	URL     string            `yaml:"url,omitempty"`
	Branch  string            `yaml:"branch,omitempty"`
	Depth   int               `yaml:"depth,omitempty"`
}
