package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleResults() []Result {
	return []Result{
		{Path: "src/b.cpp", Banner: false, Reason: "no project tag"},
		{Path: "src/a.h", Banner: true, Reason: "matched"},
	}
}

func TestPrintText_SortedAndCounted(t *testing.T) {
	var buf bytes.Buffer
	PrintText(&buf, sampleResults())
	out := buf.String()

	ia := strings.Index(out, "src/a.h")
	ib := strings.Index(out, "src/b.cpp")
	if ia < 0 || ib < 0 || ia > ib {
		t.Fatalf("expected results sorted by path:\n%s", out)
	}
	if !strings.Contains(out, "banner ") || !strings.Contains(out, "missing") {
		t.Fatalf("missing status columns:\n%s", out)
	}
	if !strings.Contains(out, "Checked: 2 (with banner: 1, without: 1)") {
		t.Fatalf("missing footer:\n%s", out)
	}
}

func TestWriteYAML_Shape(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, sampleResults()))

	var doc Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Files, 2)
	require.Equal(t, "src/a.h", doc.Files[0].Path)
	require.True(t, doc.Files[0].Banner)
	require.Equal(t, Summary{Checked: 2, With: 1, Without: 1}, doc.Summary)
}

func TestAnyMissing(t *testing.T) {
	if AnyMissing([]Result{{Banner: true}}) {
		t.Fatal("all-banner results reported missing")
	}
	if !AnyMissing(sampleResults()) {
		t.Fatal("missing result not reported")
	}
	if AnyMissing(nil) {
		t.Fatal("empty results reported missing")
	}
}
