package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/reckeep/reckeep/types"
)

func sampleRecords() []types.Record {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return []types.Record{
		{ID: 1, Name: "wifi", Value: "secret1", CreatedAt: now, UpdatedAt: now},
		{ID: 2, Name: "pin", Value: "1234", CreatedAt: now, UpdatedAt: now},
	}
}

func TestRenderRecordsTable(t *testing.T) {
	var buf bytes.Buffer
	if err := renderRecords(&buf, sampleRecords(), "table", false); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "ID") || !strings.Contains(out, "NAME") {
		t.Errorf("expected header in table output:\n%s", out)
	}
	if !strings.Contains(out, "wifi") || !strings.Contains(out, "1234") {
		t.Errorf("expected record data in table output:\n%s", out)
	}

	buf.Reset()
	if err := renderRecords(&buf, sampleRecords(), "table", true); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "NAME") {
		t.Error("quiet mode should suppress the header")
	}
}

func TestRenderRecordsJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := renderRecords(&buf, sampleRecords(), "json", false); err != nil {
		t.Fatal(err)
	}
	var decoded []types.Record
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("json output does not parse: %v", err)
	}
	if len(decoded) != 2 || decoded[0].Name != "wifi" {
		t.Errorf("unexpected decoded output: %+v", decoded)
	}
}

func TestRenderStatsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := renderStats(&buf, &types.Stats{}, "table"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "no statistics") {
		t.Errorf("expected no-data message, got:\n%s", buf.String())
	}
}
