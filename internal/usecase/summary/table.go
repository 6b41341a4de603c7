package summary

import (
	"strings"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

// Header aliases used to lift table rows into action groups.
var (
	taskHeaders         = []string{"task", "tasks", "action", "action item", "item"}
	assigneeHeaders     = []string{"assignee", "owner", "assigned to", "responsible"}
	deadlineHeaders     = []string{"deadline", "due", "due date"}
	priorityHeaders     = []string{"priority"}
	dependenciesHeaders = []string{"dependencies", "dependency", "depends on"}
)

// actionTable is a markdown table recovered from the Action Items span.
type actionTable struct {
	headers []string
	rows    []entities.ActionRow
}

// parseTable reads the first contiguous block of pipe-delimited lines as
// header, separator and data rows. A block shorter than three lines yields an
// empty table. Cells are positional: a row with fewer cells than headers pads
// with "", extra cells are dropped.
func parseTable(lines []string) actionTable {
	block := firstPipeBlock(lines)
	if len(block) < 3 {
		return actionTable{}
	}

	headers := splitRow(block[0])
	rows := make([]entities.ActionRow, 0, len(block)-2)
	for _, line := range block[2:] {
		if isSeparatorRow(line) {
			continue
		}
		cells := splitRow(line)
		if allEmpty(cells) {
			continue
		}

		row := make(entities.ActionRow, len(headers))
		for i, h := range headers {
			if _, exists := row[h]; exists {
				continue
			}
			if i < len(cells) {
				row[h] = cells[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}

	return actionTable{headers: headers, rows: rows}
}

func firstPipeBlock(lines []string) []string {
	start := -1
	for i, line := range lines {
		if strings.Contains(line, "|") {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return lines[start:i]
		}
	}
	if start < 0 {
		return nil
	}
	return lines[start:]
}

// splitRow drops one leading and one trailing pipe, then splits on the rest,
// so empty cells in the middle keep their position.
func splitRow(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")

	parts := strings.Split(line, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

// isSeparatorRow matches rows such as |---|:---:|.
func isSeparatorRow(line string) bool {
	cells := splitRow(line)
	for _, c := range cells {
		if strings.Trim(c, "-: ") != "" || !strings.Contains(c, "-") {
			return false
		}
	}
	return len(cells) > 0
}

func allEmpty(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}

// groupRows lifts rows that name both a task and an assignee into action
// groups, in first-seen assignee order. Rows missing either are left only in
// the raw table. Ids derive from assignee, position and name.
func groupRows(rows []entities.ActionRow) []entities.ActionGroup {
	groups := make([]entities.ActionGroup, 0)
	index := make(map[string]int)

	for _, row := range rows {
		name := row.Lookup(taskHeaders...)
		assignee := row.Lookup(assigneeHeaders...)
		if name == "" || assignee == "" {
			continue
		}

		gi, ok := index[assignee]
		if !ok {
			gi = len(groups)
			index[assignee] = gi
			groups = append(groups, entities.ActionGroup{Assignee: assignee, Tasks: []entities.Task{}})
		}

		position := len(groups[gi].Tasks)
		groups[gi].Tasks = append(groups[gi].Tasks, entities.Task{
			ID:           entities.DeterministicTaskID(assignee, position, name),
			Task:         name,
			Deadline:     row.Lookup(deadlineHeaders...),
			Priority:     row.Lookup(priorityHeaders...),
			Dependencies: row.Lookup(dependenciesHeaders...),
		})
	}
	return groups
}
