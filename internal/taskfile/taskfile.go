package taskfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/3cpo-dev/taskrun/internal/task"
)

// Spec declares a single runnable command.
type Spec struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Command     string            `yaml:"command"`
	Args        []string          `yaml:"args"`
	Env         map[string]string `yaml:"env"`
	Dir         string            `yaml:"dir"`
}

// File is a parsed taskfile.
type File struct {
	Default string `yaml:"default"`
	Tasks   []Spec `yaml:"tasks"`
}

// Load reads YAML task definitions from a path. If path is empty, it
// resolves ./tasks.yaml, then $XDG_CONFIG_HOME/taskrun/tasks.yaml or
// ~/.config/taskrun/tasks.yaml.
func Load(path string) (*File, error) {
	if path == "" {
		path = resolvePath()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open taskfile: %w", err)
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read taskfile: %w", err)
	}
	var tf File
	if err := yaml.Unmarshal(content, &tf); err != nil {
		return nil, fmt.Errorf("parse taskfile: %w", err)
	}
	return &tf, nil
}

func resolvePath() string {
	if _, err := os.Stat("tasks.yaml"); err == nil {
		return "tasks.yaml"
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "taskrun", "tasks.yaml")
}

// Register installs every declared task into reg as an exec-backed
// runnable. Registration happens before anything runs, so a bad taskfile
// rejects the whole invocation.
func (f *File) Register(reg *task.Registry) error {
	seen := map[string]bool{}
	for _, spec := range f.Tasks {
		if spec.Name == "" {
			return fmt.Errorf("taskfile: task with empty name")
		}
		if spec.Command == "" {
			return fmt.Errorf("taskfile: task %s has no command", spec.Name)
		}
		if seen[spec.Name] {
			return fmt.Errorf("taskfile: duplicate task %s", spec.Name)
		}
		seen[spec.Name] = true
		reg.Register(task.ID(spec.Name), spec.Description, &Command{Spec: spec})
	}
	return nil
}
