package entities

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ActionGroup holds the tasks assigned to one person
type ActionGroup struct {
	Assignee string `json:"assignee" mapstructure:"assignee"`
	Tasks    []Task `json:"tasks" mapstructure:"tasks"`
}

// Task is a single action item within a group
type Task struct {
	ID           string      `json:"id" mapstructure:"id"`
	Task         string      `json:"task" mapstructure:"task"`
	Deadline     string      `json:"deadline,omitempty" mapstructure:"deadline"`
	Priority     string      `json:"priority,omitempty" mapstructure:"priority"`
	Dependencies string      `json:"dependencies,omitempty" mapstructure:"dependencies"`
	Completed    bool        `json:"completed" mapstructure:"completed"`
	Attachment   *Attachment `json:"attachment,omitempty" mapstructure:"attachment"`
}

// Attachment references an uploaded file by name only
type Attachment struct {
	Name string `json:"name" mapstructure:"name"`
}

// taskNamespace scopes name-based task ids so they never collide with ids
// generated elsewhere.
var taskNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("meeting-summarizer/task"))

// NewTask creates a task with a random id
func NewTask(name string) Task {
	return Task{
		ID:   uuid.New().String(),
		Task: name,
	}
}

// DeterministicTaskID derives a stable id from the task's position and
// content, so parsing the same input twice yields identical ids.
func DeterministicTaskID(assignee string, index int, name string) string {
	seed := strings.Join([]string{assignee, strconv.Itoa(index), name}, "\x00")
	return uuid.NewSHA1(taskNamespace, []byte(seed)).String()
}

// NormalizedName is the identity used for duplicate detection: trimmed and
// lower-cased, with no unicode normalization.
func (t Task) NormalizedName() string {
	return strings.ToLower(strings.TrimSpace(t.Task))
}

// TaskCount returns the number of tasks carrying a name
func (g ActionGroup) TaskCount() int {
	n := 0
	for _, t := range g.Tasks {
		if t.Task != "" {
			n++
		}
	}
	return n
}

// HasAttachments reports whether any task in the group references a file
func (g ActionGroup) HasAttachments() bool {
	for _, t := range g.Tasks {
		if t.Attachment != nil && t.Attachment.Name != "" {
			return true
		}
	}
	return false
}
