package storage

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestExport(t *testing.T) {
	st := New(t.TempDir())
	runID, err := st.Save("default", testResult(t))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	data, err := st.Export(runID)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var buf bytes.Buffer
	if err := ExportJSON(&buf, data); err != nil {
		t.Fatalf("json export failed: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if decoded["id"] != runID {
		t.Errorf("expected id %s, got %v", runID, decoded["id"])
	}
	if _, ok := decoded["breakthrough"]; !ok {
		t.Error("missing breakthrough")
	}
	profile, ok := decoded["profile"].(map[string]interface{})
	if !ok {
		t.Fatalf("missing profile object: %v", decoded["profile"])
	}
	for _, key := range []string{"x", "central", "min", "max", "lower_quartile", "upper_quartile", "mean"} {
		if _, ok := profile[key]; !ok {
			t.Errorf("profile missing key %q", key)
		}
	}
	if _, ok := profile["LowerQuartile"]; ok {
		t.Error("profile keys should be snake_case")
	}

	tests := []struct {
		btc    bool
		header string
		rows   int
	}{
		{false, "x,central,min,max,lower_quartile,upper_quartile,mean", 21},
		{true, "pore_volume,concentration", 20},
	}
	for _, tt := range tests {
		buf.Reset()
		if err := ExportCSV(&buf, data, tt.btc); err != nil {
			t.Fatalf("csv export failed: %v", err)
		}
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if lines[0] != tt.header {
			t.Errorf("header = %q, want %q", lines[0], tt.header)
		}
		if len(lines)-1 != tt.rows {
			t.Errorf("expected %d rows, got %d", tt.rows, len(lines)-1)
		}
	}
}

func TestExportMissingRun(t *testing.T) {
	if _, err := New(t.TempDir()).Export("nope"); err == nil {
		t.Error("expected error for missing run")
	}
}
