package lang

import (
	"os"
	"path/filepath"
	"testing"
)

func writeLanguageFile(t *testing.T, dir, code, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, code+".json"), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s.json: %v", code, err)
	}
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	dir := t.TempDir()
	writeLanguageFile(t, dir, "en", `{"greeting": "Hello %s!", "plain": "Just text", "only_en": "English only"}`)
	writeLanguageFile(t, dir, "es", `{"greeting": "Hola %s!", "plain": "Solo texto"}`)
	return NewManager(dir)
}

func TestGetString(t *testing.T) {
	m := newTestManager(t)

	if got := m.GetString("plain", "en"); got != "Just text" {
		t.Errorf("GetString(plain, en) = %q, want %q", got, "Just text")
	}
	if got := m.GetString("plain", "es"); got != "Solo texto" {
		t.Errorf("GetString(plain, es) = %q, want %q", got, "Solo texto")
	}
}

func TestGetStringInterpolation(t *testing.T) {
	m := newTestManager(t)

	if got := m.GetString("greeting", "es", "Kalek"); got != "Hola Kalek!" {
		t.Errorf("GetString(greeting, es) = %q, want %q", got, "Hola Kalek!")
	}
}

func TestGetStringFallsBackToEnglish(t *testing.T) {
	m := newTestManager(t)

	if got := m.GetString("only_en", "es"); got != "English only" {
		t.Errorf("GetString(only_en, es) = %q, want fallback %q", got, "English only")
	}
}

func TestGetStringMissingKey(t *testing.T) {
	m := newTestManager(t)

	if got := m.GetString("does_not_exist", "en"); got != "[MISSING: does_not_exist]" {
		t.Errorf("GetString missing key = %q, want marker", got)
	}
}

func TestMissingDirectory(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "nope"))

	if got := m.GetString("anything", "en"); got != "[MISSING: anything]" {
		t.Errorf("GetString on empty manager = %q, want marker", got)
	}
	if len(m.Languages()) != 0 {
		t.Errorf("Languages() = %v, want none", m.Languages())
	}
}

func TestHas(t *testing.T) {
	m := newTestManager(t)

	if !m.Has("en") || !m.Has("es") {
		t.Error("Has() should report loaded languages")
	}
	if m.Has("fr") {
		t.Error("Has(fr) should be false when fr.json is absent")
	}
}
