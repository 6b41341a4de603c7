package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	"github.com/johnquangdev/meeting-summarizer/internal/infrastructure/export"
	"github.com/johnquangdev/meeting-summarizer/internal/usecase/summary"
)

// Output formats
const (
	outputYAML = "yaml"
	outputJSON = "json"
)

// errValidation makes the process exit non-zero after the report is printed
var errValidation = errors.New("meeting notes failed validation")

func newRootCommand() *cobra.Command {
	var output string

	root := &cobra.Command{
		Use:           "notes",
		Short:         "Work with meeting notes and generated summaries",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch output {
			case outputYAML, outputJSON:
				return nil
			default:
				return fmt.Errorf("invalid output format %q (use yaml or json)", output)
			}
		},
	}
	root.PersistentFlags().StringVarP(&output, "output", "o", outputYAML, "Output format: yaml, json")

	write := func(cmd *cobra.Command, v interface{}) error {
		return render(cmd.OutOrStdout(), output, v)
	}

	root.AddCommand(
		newValidateCommand(write),
		newPromptCommand(),
		newParseCommand(write),
		newSuggestionsCommand(write),
		newEmailsCommand(write),
	)
	return root
}

type writeFunc func(cmd *cobra.Command, v interface{}) error

func newValidateCommand(write writeFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <notes.json>",
		Short: "Report missing names and duplicate tasks",
		Long: `Validate the action groups of a notes file.

Every missing assignee, missing task name and duplicate task is listed. The
command exits non-zero when any issue is found.

Examples:
  notes validate meeting.json
  notes validate meeting.json -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readNotes(args[0])
			if err != nil {
				return err
			}
			report := summary.Validate(m.ActionGroups)
			if err := write(cmd, report); err != nil {
				return err
			}
			if !report.OK {
				return errValidation
			}
			return nil
		},
	}
}

func newPromptCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prompt <notes.json>",
		Short: "Print the summary prompt for a notes file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readNotes(args[0])
			if err != nil {
				return err
			}
			if err := summary.Validate(m.ActionGroups).Err(); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), summary.ComposeSummaryPrompt(m))
			return err
		},
	}
}

func newParseCommand(write writeFunc) *cobra.Command {
	var modeName string

	cmd := &cobra.Command{
		Use:   "parse <reply.txt|notes.json>",
		Short: "Parse a generated reply or a notes object",
		Long: `Parse a file into the canonical summary model.

Files ending in .json are read as JSON (an object or a string); anything else
is read as reply text.

Examples:
  notes parse reply.txt
  notes parse transcript.txt --mode transcript
  notes parse meeting.json --mode structured -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := summary.ParseMode(modeName)
			if err != nil {
				return err
			}
			input, err := readInput(args[0])
			if err != nil {
				return err
			}
			m, err := summary.NewParser().ParseWithMode(input, mode)
			if err != nil {
				return err
			}
			return write(cmd, m)
		},
	}
	cmd.Flags().StringVar(&modeName, "mode", "auto", "Parse mode: auto, structured, freetext, transcript")
	return cmd
}

func newSuggestionsCommand(write writeFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "suggestions <reply.txt>",
		Short: "List the suggested actions in a generated reply",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			return write(cmd, summary.ExtractSuggestions(string(data)))
		},
	}
}

func newEmailsCommand(write writeFunc) *cobra.Command {
	var sender string

	cmd := &cobra.Command{
		Use:   "emails <notes.json>",
		Short: "Draft one follow-up email per assignee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readNotes(args[0])
			if err != nil {
				return err
			}
			emails, err := export.Emails(m.ActionGroups, sender)
			if err != nil {
				return err
			}
			return write(cmd, emails)
		},
	}
	cmd.Flags().StringVar(&sender, "sender", "", "Name used to sign the emails")
	return cmd
}

func readNotes(path string) (*entities.MeetingSummary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	m, err := summary.NewParser().ParseWithMode(json.RawMessage(data), summary.ModeStructured)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return m, nil
}

func readInput(path string) (interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return json.RawMessage(data), nil
	}
	return string(data), nil
}

func render(w io.Writer, format string, v interface{}) error {
	if format == outputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
