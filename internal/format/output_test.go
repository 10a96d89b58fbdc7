package format

import (
	"bytes"
	"strings"
	"testing"
)

type fakeTable struct{}

func (fakeTable) Header() []string { return []string{"Id", "Name"} }
func (fakeTable) Rows() [][]string { return [][]string{{"1", "Appliances"}, {"2", "books"}} }

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, map[string]any{"data": []int{1, 2}}, "json", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != `{"data":[1,2]}` {
		t.Fatalf("unexpected json: %q", got)
	}
}

func TestWrite_Table(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, fakeTable{}, "table", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Id", "Name", "Appliances", "books"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in table output:\n%s", want, out)
		}
	}
	if strings.Index(out, "Appliances") > strings.Index(out, "books") {
		t.Fatalf("rows out of order:\n%s", out)
	}
}

func TestWrite_Errors(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, map[string]any{}, "table", false); err == nil {
		t.Fatalf("expected error for non-tabular payload")
	}
	if err := Write(&buf, map[string]any{}, "edn", false); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
