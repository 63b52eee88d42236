package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/benzea/skein-altivec/internal/model"
)

var sample = []model.FileReport{
	{Path: "short.rsp", Algorithm: "skein512", Passed: 129},
	{
		Path:      "long.rsp",
		Algorithm: "skein512",
		Passed:    99,
		Failed:    1,
		Mismatches: []model.Mismatch{
			{Index: 12, Length: "832", Expected: "aa", Got: "bb"},
		},
	},
	{Path: "gone.rsp", Algorithm: "skein512", Err: "open gone.rsp: no such file"},
}

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := New(&buf, "text", false)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Render(sample); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"PASS short.rsp (skein512): 129 ok, 0 failed, 0 skipped",
		"FAIL long.rsp (skein512): 99 ok, 1 failed, 0 skipped",
		"vector 12 (Len = 832)",
		"ERROR gone.rsp: open gone.rsp: no such file",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := New(&buf, "json", false)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Render(sample); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(sample) {
		t.Fatalf("got %d JSON lines, want %d", len(lines), len(sample))
	}
	var rep model.FileReport
	if err := json.Unmarshal([]byte(lines[1]), &rep); err != nil {
		t.Fatalf("line 2 is not valid JSON: %v", err)
	}
	if rep.Path != "long.rsp" || rep.Failed != 1 || len(rep.Mismatches) != 1 {
		t.Errorf("decoded report = %+v", rep)
	}
}

func TestYAMLRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := New(&buf, "yaml", false)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Render(sample); err != nil {
		t.Fatal(err)
	}
	var reports []model.FileReport
	if err := yaml.Unmarshal(buf.Bytes(), &reports); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if len(reports) != len(sample) || reports[2].Err == "" {
		t.Errorf("decoded reports = %+v", reports)
	}
}

func TestUnknownFormat(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "xml", false); err == nil {
		t.Error("unknown format accepted")
	}
}
