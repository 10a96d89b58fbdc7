package docs

import (
	"reflect"
	"strings"
	"testing"
)

func TestTopics(t *testing.T) {
	got := Topics()
	want := []string{"cli", "overview", "tui"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Topics() = %v, want %v", got, want)
	}
}

func TestGet(t *testing.T) {
	body, ok := Get(" TUI ")
	if !ok {
		t.Fatalf("expected tui topic")
	}
	if !strings.Contains(body, "delete the selected row") {
		t.Fatalf("unexpected tui body: %q", body)
	}
	if _, ok := Get("../docs"); ok {
		t.Fatalf("expected path-like topic to be rejected")
	}
	if _, ok := Get("missing"); ok {
		t.Fatalf("expected unknown topic to be rejected")
	}
}

func TestHTML(t *testing.T) {
	page, err := HTML("overview")
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	s := string(page)
	if !strings.Contains(s, "<title>saleshub: overview</title>") {
		t.Fatalf("missing title: %s", s)
	}
	if !strings.Contains(s, "<h1") {
		t.Fatalf("expected a rendered heading: %s", s)
	}
	if _, err := HTML("missing"); err == nil {
		t.Fatalf("expected unknown topic to fail")
	}
}
