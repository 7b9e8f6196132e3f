package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/agentx-labs/cmdlayer/internal/commands"
	"github.com/agentx-labs/cmdlayer/internal/sources"
)

func sampleRecords() []commands.Record {
	return []commands.Record{
		{Name: "deploy", Description: "Deploy the app", Source: commands.SourceProject},
		{Name: "git:commit", Description: "Commit changes", ArgumentHint: "[message]", Source: commands.SourceUser},
		{Name: "lint", Description: strings.Repeat("x", 80), Source: commands.SourceCustom},
	}
}

func TestFilterRecords(t *testing.T) {
	tests := []struct {
		name   string
		source commands.Source
		want   []string
	}{
		{"no filter keeps all", "", []string{"deploy", "git:commit", "lint"}},
		{"project", commands.SourceProject, []string{"deploy"}},
		{"user", commands.SourceUser, []string{"git:commit"}},
		{"custom", commands.SourceCustom, []string{"lint"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterRecords(sampleRecords(), tt.source)
			if len(got) != len(tt.want) {
				t.Fatalf("filterRecords(%q) returned %d records, want %d", tt.source, len(got), len(tt.want))
			}
			for i, r := range got {
				if r.Name != tt.want[i] {
					t.Errorf("record %d = %q, want %q", i, r.Name, tt.want[i])
				}
			}
		})
	}
}

func TestFilterRecordsNoMatchIsEmptyNotNil(t *testing.T) {
	got := filterRecords([]commands.Record{{Name: "a", Source: commands.SourceUser}}, commands.SourceProject)
	if got == nil || len(got) != 0 {
		t.Errorf("filterRecords = %#v, want empty slice", got)
	}
}

func TestPrintListTable(t *testing.T) {
	var buf bytes.Buffer
	if err := printListTable(&buf, sampleRecords()); err != nil {
		t.Fatalf("printListTable: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"NAME", "SOURCE", "ARGS", "DESCRIPTION", "/git:commit", "[message]", "project"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, strings.Repeat("x", 58)) {
		t.Errorf("long description not truncated:\n%s", out)
	}
	if !strings.Contains(out, strings.Repeat("x", 57)+"...") {
		t.Errorf("truncated description missing ellipsis:\n%s", out)
	}
}

func TestPrintListJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := printListJSON(&buf, nil); err != nil {
		t.Fatalf("printListJSON: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("printListJSON(nil) = %q, want []", got)
	}

	buf.Reset()
	if err := printListJSON(&buf, sampleRecords()[:2]); err != nil {
		t.Fatalf("printListJSON: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"argumentHint": "[message]"`) {
		t.Errorf("missing argumentHint:\n%s", out)
	}
	if strings.Count(out, "argumentHint") != 1 {
		t.Errorf("empty argumentHint should be omitted:\n%s", out)
	}
}

func TestLooksLikePath(t *testing.T) {
	tests := []struct {
		arg  string
		want bool
	}{
		{"git:commit", false},
		{"deploy", false},
		{"/deploy", true},
		{"deploy.md", true},
		{"./cmds/deploy.md", true},
		{`C:\cmds\deploy`, true},
	}
	for _, tt := range tests {
		if got := looksLikePath(tt.arg); got != tt.want {
			t.Errorf("looksLikePath(%q) = %v, want %v", tt.arg, got, tt.want)
		}
	}
}

func TestFindRecord(t *testing.T) {
	rec, ok := findRecord(sampleRecords(), "git:commit")
	if !ok || rec.Source != commands.SourceUser {
		t.Errorf("findRecord(git:commit) = %+v, %v", rec, ok)
	}
	if _, ok := findRecord(sampleRecords(), "missing"); ok {
		t.Error("findRecord(missing) should not be found")
	}
}

func TestNextPriority(t *testing.T) {
	tests := []struct {
		name    string
		entries []sources.Entry
		want    int
	}{
		{"empty", nil, 0},
		{"single", []sources.Entry{{Priority: 3}}, 4},
		{"max not last", []sources.Entry{{Priority: 7}, {Priority: 2}}, 8},
		{"negative", []sources.Entry{{Priority: -5}}, -4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nextPriority(tt.entries); got != tt.want {
				t.Errorf("nextPriority = %d, want %d", got, tt.want)
			}
		})
	}
}
