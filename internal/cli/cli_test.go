package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/fbkeywords/reservedwords/internal/importer"
)

func TestPrintReport(t *testing.T) {
	report := importer.Report{Outcomes: []importer.Outcome{
		{Op: importer.OpClear, Rows: 3},
		{Op: importer.OpSource, File: "keywords.cpp", Read: 5, Rows: 2},
		{Op: importer.OpReserved, File: "reserved.txt", Read: 4},
		{Op: importer.OpDelete, File: "delete.txt", Rows: 1},
	}}

	var buf bytes.Buffer
	PrintReport(&buf, report)

	want := []string{
		"✓ clear: 3 deleted",
		"✓ source keywords.cpp: 5 read, 2 changed",
		"⚠ reserved reserved.txt: 4 read, 0 changed",
		"✓ delete delete.txt: 1 deleted",
	}
	got := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("output =\n%s\nwant\n%s", buf.String(), strings.Join(want, "\n"))
	}
}

func TestPrintReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	PrintReport(&buf, importer.Report{})
	if buf.Len() != 0 {
		t.Errorf("PrintReport wrote %q for an empty report", buf.String())
	}

	PrintNothingToDo(&buf)
	if got := buf.String(); got != "⚠ nothing to do\n" {
		t.Errorf("PrintNothingToDo wrote %q", got)
	}
}

func TestRunExitStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantStderr string
	}{
		{name: "success", wantStatus: 0},
		{name: "reported", err: ErrExit, wantStatus: 1},
		{name: "unreported", err: errors.New("boom"), wantStatus: 1, wantStderr: "test: boom\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{
				Use:           "test",
				SilenceErrors: true,
				SilenceUsage:  true,
				RunE:          func(*cobra.Command, []string) error { return tt.err },
			}
			var stdout, stderr bytes.Buffer
			if got := Run(cmd, nil, &stdout, &stderr); got != tt.wantStatus {
				t.Errorf("Run() = %d, want %d", got, tt.wantStatus)
			}
			if stderr.String() != tt.wantStderr {
				t.Errorf("stderr = %q, want %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestSetupRejectsColorMode(t *testing.T) {
	c := &Common{Color: "sometimes"}
	if _, err := c.Setup(t.Context(), &bytes.Buffer{}); err == nil {
		t.Error("expected error")
	}
}
