package output

import (
	"bytes"
	"testing"

	"taskflow/internal/taskflow"
	"taskflow/internal/testutil"
)

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Setup project", "Setup project"},
		{"", "(untitled)"},
		{"   ", "(untitled)"},
		{"line one\nline two", "line one line two"},
		{"a\r\nb", "a  b"},
		{"\n", "(untitled)"},
	}

	for _, tt := range tests {
		if got := normalizeTitle(tt.in); got != tt.want {
			t.Errorf("normalizeTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatTask(t *testing.T) {
	flow := taskflow.New(taskflow.WithClock(testutil.NewFakeClock()))
	pending := flow.AddTask("Write documentation", "")
	done := flow.AddTask("Setup project", "")
	done.Complete()

	var buf bytes.Buffer
	FormatTask(&buf, 1, pending)
	FormatTask(&buf, 12, done)

	want := "   1  [ ] Write documentation\n  12  [x] Setup project\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestFormatStats(t *testing.T) {
	flow := taskflow.New(taskflow.WithClock(testutil.NewFakeClock()))
	flow.AddTask("a", "").Complete()
	flow.AddTask("b", "")
	flow.AddTask("c", "")

	var buf bytes.Buffer
	FormatStats(&buf, flow)

	want := "Total tasks: 3\nPending: 2\nCompleted: 1\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}
