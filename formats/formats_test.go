package formats

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func sampleReport() Report {
	return Report{
		RunID:   "run-1",
		SourceA: "a.txt",
		SourceB: "b.txt",
		Length:  3,
		Text:    "cde",
		Elapsed: 42 * time.Millisecond,
	}
}

func TestRegistry(t *testing.T) {
	for _, name := range []string{"text", "json", "yaml"} {
		if _, err := Get(name); err != nil {
			t.Errorf("Expected %q to be registered, got %v", name, err)
		}
	}

	if _, err := Get("xml"); err == nil {
		t.Error("Expected error for unknown format")
	}

	want := []string{"json", "text", "yaml"}
	if diff := cmp.Diff(want, List()); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	if err := Register(&RenderFormat{Name: "text"}); err == nil {
		t.Error("Expected error registering a duplicate name")
	}
	if err := Register(&RenderFormat{}); err == nil {
		t.Error("Expected error registering a nameless format")
	}
}

func TestRegisterRejectsInvalidNames(t *testing.T) {
	for _, name := range []string{"XML", "plain text", "plain-text", "csv!"} {
		if err := Register(&RenderFormat{Name: name}); err == nil {
			t.Errorf("Expected error registering invalid name %q", name)
		}
	}
}

func TestTextRender(t *testing.T) {
	out, err := Text.Render(sampleReport())
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if !strings.Contains(out, "The longest common substring is 3 characters") {
		t.Errorf("Missing length line in output:\n%s", out)
	}
	if !strings.Contains(out, "'cde'") {
		t.Errorf("Missing match text in output:\n%s", out)
	}
	if !strings.Contains(out, "It took") {
		t.Errorf("Missing timing line in output:\n%s", out)
	}
}

func TestTextRenderNoMatch(t *testing.T) {
	r := sampleReport()
	r.Length = 0
	r.Text = ""

	out, err := Text.Render(r)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if !strings.Contains(out, "no common substring") {
		t.Errorf("Expected the no-match wording, got:\n%s", out)
	}
}

func TestJSONRenderRoundTrip(t *testing.T) {
	out, err := JSON.Render(sampleReport())
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	var got Report
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if diff := cmp.Diff(sampleReport(), got); diff != "" {
		t.Errorf("Round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestYAMLRenderRoundTrip(t *testing.T) {
	out, err := YAML.Render(sampleReport())
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	var got Report
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("Output is not valid YAML: %v", err)
	}
	if diff := cmp.Diff(sampleReport(), got); diff != "" {
		t.Errorf("Round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestReportTruncate(t *testing.T) {
	r := sampleReport()

	capped := r.Truncate(2)
	if capped.Text != "cd" {
		t.Errorf("Truncate(2).Text = %q, want %q", capped.Text, "cd")
	}
	if capped.Length != 3 {
		t.Errorf("Truncate must not change Length, got %d", capped.Length)
	}

	if got := r.Truncate(0); got.Text != r.Text {
		t.Errorf("Truncate(0) must be a no-op, got %q", got.Text)
	}
	if got := r.Truncate(100); got.Text != r.Text {
		t.Errorf("Truncate beyond the text must be a no-op, got %q", got.Text)
	}
}
