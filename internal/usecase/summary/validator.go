package summary

import (
	"fmt"
	"sort"
	"strings"

	apperrors "github.com/johnquangdev/meeting-summarizer/errors"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

// IssueKind classifies a validation failure
type IssueKind string

const (
	IssueMissingAssignee IssueKind = "MissingAssignee"
	IssueMissingTaskName IssueKind = "MissingTaskName"
	IssueDuplicateTask   IssueKind = "DuplicateTask"
)

// Messages shown next to the offending field.
const (
	MsgMissingAssignee = "Each assignee must have a name"
	MsgMissingTaskName = "Each task must have a task name"
	MsgDuplicateTask   = "This task is already assigned to this person"
)

// Issue is a single validation failure. TaskID is empty for group-level
// issues such as a missing assignee.
type Issue struct {
	Kind       IssueKind `json:"kind"`
	GroupIndex int       `json:"groupIndex"`
	TaskID     string    `json:"taskId,omitempty"`
	Message    string    `json:"message"`
}

// Report is the result of validating action groups. Errors maps task keys
// (the task id, or a positional key when the id is empty) to a message.
type Report struct {
	OK     bool              `json:"ok"`
	Errors map[string]string `json:"errors"`
	Issues []Issue           `json:"issues"`
}

// Validate checks required fields and per-assignee task uniqueness. It never
// mutates groups and reports every problem at once.
func Validate(groups []entities.ActionGroup) Report {
	issues := make([]Issue, 0)
	for gi := range groups {
		issues = append(issues, validateGroup(groups[gi], gi)...)
	}
	return newReport(issues)
}

// Revalidate recomputes issues for a single group, typically after one of its
// task names changed. Issues reported for other groups in prior are kept as-is.
func Revalidate(groups []entities.ActionGroup, groupIndex int, prior Report) Report {
	issues := make([]Issue, 0, len(prior.Issues))
	for _, issue := range prior.Issues {
		if issue.GroupIndex != groupIndex {
			issues = append(issues, issue)
		}
	}
	if groupIndex >= 0 && groupIndex < len(groups) {
		issues = append(issues, validateGroup(groups[groupIndex], groupIndex)...)
	}

	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].GroupIndex < issues[j].GroupIndex
	})
	return newReport(issues)
}

// HasDuplicate reports whether name collides with another task of the group,
// ignoring the task identified by taskID. Blank names never collide.
func HasDuplicate(group entities.ActionGroup, taskID, name string) bool {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return false
	}
	for _, t := range group.Tasks {
		if t.ID == taskID {
			continue
		}
		if t.NormalizedName() == normalized {
			return true
		}
	}
	return false
}

// Err converts a failing report into an AppError whose details carry every
// offending field. It returns nil when the report is OK.
func (r Report) Err() error {
	if r.OK {
		return nil
	}
	details := make(map[string]string, len(r.Issues))
	for _, issue := range r.Issues {
		key := issue.TaskID
		if key == "" {
			key = fmt.Sprintf("group[%d].assignee", issue.GroupIndex)
		}
		details[key] = issue.Message
	}
	return apperrors.ErrValidationFailed(r.summaryMessage(), details)
}

// Count returns how many issues of the given kind were reported.
func (r Report) Count(kind IssueKind) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Kind == kind {
			n++
		}
	}
	return n
}

func (r Report) summaryMessage() string {
	switch {
	case r.Count(IssueMissingAssignee) > 0 || r.Count(IssueMissingTaskName) > 0:
		return "Each assignee must have a name and each task must have a task name."
	case r.Count(IssueDuplicateTask) > 0:
		return "Please fix all duplicate tasks before generating the summary."
	default:
		return "Meeting notes are invalid."
	}
}

func validateGroup(group entities.ActionGroup, gi int) []Issue {
	var issues []Issue

	if strings.TrimSpace(group.Assignee) == "" {
		issues = append(issues, Issue{
			Kind:       IssueMissingAssignee,
			GroupIndex: gi,
			Message:    MsgMissingAssignee,
		})
	}

	seen := make(map[string]struct{}, len(group.Tasks))
	for ti, task := range group.Tasks {
		key := taskKey(gi, ti, task)
		name := task.NormalizedName()
		if name == "" {
			issues = append(issues, Issue{
				Kind:       IssueMissingTaskName,
				GroupIndex: gi,
				TaskID:     key,
				Message:    MsgMissingTaskName,
			})
			continue
		}
		if _, dup := seen[name]; dup {
			issues = append(issues, Issue{
				Kind:       IssueDuplicateTask,
				GroupIndex: gi,
				TaskID:     key,
				Message:    MsgDuplicateTask,
			})
			continue
		}
		seen[name] = struct{}{}
	}
	return issues
}

func newReport(issues []Issue) Report {
	errs := make(map[string]string)
	for _, issue := range issues {
		if issue.TaskID == "" {
			continue
		}
		if _, exists := errs[issue.TaskID]; !exists {
			errs[issue.TaskID] = issue.Message
		}
	}
	return Report{
		OK:     len(issues) == 0,
		Errors: errs,
		Issues: issues,
	}
}

// taskKey identifies a task in reports. Tasks submitted without an id fall
// back to their position.
func taskKey(gi, ti int, task entities.Task) string {
	if task.ID != "" {
		return task.ID
	}
	return fmt.Sprintf("group[%d].task[%d]", gi, ti)
}

// DuplicateTracker keeps a Report current while tasks are edited one at a
// time. Each rename re-checks only the edited task's group.
type DuplicateTracker struct {
	groups []entities.ActionGroup
	report Report
}

// NewDuplicateTracker validates groups once. The tracker works on its own
// copy, so later edits never reach the caller's slice.
func NewDuplicateTracker(groups []entities.ActionGroup) *DuplicateTracker {
	dup := make([]entities.ActionGroup, len(groups))
	for i, g := range groups {
		tasks := make([]entities.Task, len(g.Tasks))
		copy(tasks, g.Tasks)
		dup[i] = entities.ActionGroup{Assignee: g.Assignee, Tasks: tasks}
	}
	return &DuplicateTracker{groups: dup, report: Validate(dup)}
}

// Rename sets the name of the task at (groupIndex, taskIndex) and returns the
// refreshed report. Out-of-range indexes leave the report unchanged.
func (d *DuplicateTracker) Rename(groupIndex, taskIndex int, name string) Report {
	if groupIndex < 0 || groupIndex >= len(d.groups) {
		return d.report
	}
	tasks := d.groups[groupIndex].Tasks
	if taskIndex < 0 || taskIndex >= len(tasks) {
		return d.report
	}
	tasks[taskIndex].Task = name
	d.report = Revalidate(d.groups, groupIndex, d.report)
	return d.report
}

// Report returns the current report.
func (d *DuplicateTracker) Report() Report {
	return d.report
}

// Groups returns the tracked groups.
func (d *DuplicateTracker) Groups() []entities.ActionGroup {
	return d.groups
}
