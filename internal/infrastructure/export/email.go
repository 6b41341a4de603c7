package export

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

// DefaultSender signs emails when no sender name is given
const DefaultSender = "[Your Name]"

// EmailTemplate is a ready-to-send email for one assignee
type EmailTemplate struct {
	Assignee string `json:"assignee"`
	Subject  string `json:"subject"`
	Body     string `json:"email"`
}

const emailBody = `Dear {{ .Assignee }},

I hope this email finds you well. Following our recent meeting, I wanted to share your assigned action items and their details.

📋 Your Action Items:
{{ range $i, $t := .Tasks }}
{{ add1 $i }}. {{ trim $t.Task }}
{{- with $t.Deadline }}
   📅 Deadline: {{ . }}{{ end }}
{{- with $t.Priority }}
   ⭐ Priority: {{ . }}{{ end }}
{{- with $t.Dependencies }}
   🔗 Dependencies: {{ . }}{{ end }}
{{ end }}
{{- if .Attachments }}
📎 Attachments:
{{- range .Attachments }}
- {{ . }}{{ end }}
{{ end }}
Please review these items and let me know if you have any questions or need clarification on any of the tasks.

Best regards,
{{ .Sender | default "` + DefaultSender + `" }}`

var emailTemplate = template.Must(template.New("email").Funcs(sprig.TxtFuncMap()).Parse(emailBody))

type emailData struct {
	Assignee    string
	Tasks       []entities.Task
	Attachments []string
	Sender      string
}

// Emails renders one email per assignee. Groups without an assignee are
// skipped and only named tasks are listed.
func Emails(groups []entities.ActionGroup, sender string) ([]EmailTemplate, error) {
	out := make([]EmailTemplate, 0, len(groups))
	for _, g := range groups {
		assignee := strings.TrimSpace(g.Assignee)
		if assignee == "" {
			continue
		}

		data := emailData{Assignee: assignee, Sender: strings.TrimSpace(sender)}
		for _, t := range g.Tasks {
			if strings.TrimSpace(t.Task) == "" {
				continue
			}
			data.Tasks = append(data.Tasks, t)
			if t.Attachment != nil && t.Attachment.Name != "" {
				data.Attachments = append(data.Attachments, t.Attachment.Name)
			}
		}

		var buf bytes.Buffer
		if err := emailTemplate.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("rendering email for %s: %w", assignee, err)
		}
		out = append(out, EmailTemplate{
			Assignee: assignee,
			Subject:  "Your action items from our recent meeting",
			Body:     buf.String(),
		})
	}
	return out, nil
}
