package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/san-kum/glide/internal/anim"
	"github.com/san-kum/glide/internal/sim"
)

func testResult() *sim.Result {
	return &sim.Result{
		Scenario: "demo",
		Samples: []sim.Sample{
			{Time: 0, Value: 0, Target: 0},
			{Time: 500 * time.Millisecond, Value: 5, Target: 10, Records: 1, Status: anim.StatusRunning},
			{Time: time.Second, Value: 10, Target: 10, Status: anim.StatusStatic},
		},
		Frames:  2,
		Metrics: map[string]float64{"travel": 10},
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, testResult()); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var got Data
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Scenario != "demo" || len(got.Samples) != 3 {
		t.Errorf("unexpected data %+v", got)
	}
	if got.Samples[1].Time != 0.5 || got.Samples[1].Status != "running" {
		t.Errorf("unexpected sample %+v", got.Samples[1])
	}
}

func TestExportJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := ExportJSON(path, testResult()); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"scenario": "demo"`) {
		t.Errorf("unexpected file contents:\n%s", data)
	}
}

func TestTraceToSVG(t *testing.T) {
	svg := TraceToSVG(testResult(), 400, 200, DefaultSVGStyle)
	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatalf("not an svg document:\n%s", svg)
	}
	if n := strings.Count(svg, "<path"); n != 2 {
		t.Errorf("expected 2 paths, got %d", n)
	}
	if !strings.Contains(svg, DefaultSVGStyle.Value.Hex()) {
		t.Error("value colour missing")
	}
}

func TestTraceToSVGTooShort(t *testing.T) {
	res := &sim.Result{Samples: []sim.Sample{{}}}
	if svg := TraceToSVG(res, 10, 10, DefaultSVGStyle); svg != "" {
		t.Errorf("expected empty output, got %q", svg)
	}
	if svg := TraceToSVG(nil, 10, 10, DefaultSVGStyle); svg != "" {
		t.Errorf("expected empty output for nil, got %q", svg)
	}
}
