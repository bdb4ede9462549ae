package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func readRecords(t *testing.T, path string) []map[string]any {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(string(b)), "\n") {
		var rec map[string]any
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("not json: %q: %v", line, err)
		}
		out = append(out, rec)
	}
	return out
}

func TestSetupWritesJSONLines(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	cleanup, err := Setup(Config{Dir: dir, Debug: true, Data: "/usr/share/tzdata"})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if Path() != filepath.Join(dir, FileName) {
		t.Fatalf("path=%s", Path())
	}

	L().Debug("tzdb.loaded", "zones", 3)
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if Path() != "" {
		t.Fatalf("logger still writing after cleanup")
	}

	recs := readRecords(t, filepath.Join(dir, FileName))
	if len(recs) != 2 {
		t.Fatalf("expected init and debug lines, got %v", recs)
	}
	rec := recs[1]
	if rec["msg"] != "tzdb.loaded" || rec["zones"] != float64(3) || rec["source"] == nil {
		t.Fatalf("record=%v", rec)
	}
	if rec["tzdata"] != "/usr/share/tzdata" {
		t.Fatalf("record does not name its tz data: %v", rec)
	}
	stamp, _ := rec["time"].(string)
	if !strings.HasSuffix(stamp, "Z") {
		t.Fatalf("time not in UTC: %q", stamp)
	}
	if _, err := time.Parse(time.RFC3339Nano, stamp); err != nil {
		t.Fatalf("time: %v", err)
	}
}

func TestSetupDefaultsToBundleAtInfo(t *testing.T) {
	dir := t.TempDir()
	cleanup, err := Setup(Config{Dir: dir})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	L().Debug("hidden")
	L().Info("tzsource.loaded")
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}

	recs := readRecords(t, filepath.Join(dir, FileName))
	if len(recs) != 2 || recs[1]["msg"] != "tzsource.loaded" {
		t.Fatalf("records=%v", recs)
	}
	if recs[1]["tzdata"] != "bundle" || recs[1]["source"] != nil {
		t.Fatalf("record=%v", recs[1])
	}
}

func TestSetupFailureDiscards(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Setup(Config{Dir: filepath.Join(file, "logs")}); err == nil {
		t.Fatalf("expected error for a log dir under a file")
	}
	if Path() != "" {
		t.Fatalf("failed setup left a logger behind")
	}
	L().Info("ignored")
}
