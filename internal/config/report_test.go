package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadReportSettingsDefaults(t *testing.T) {
	got, err := LoadReportSettings("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != DefaultReportSettings() {
		t.Fatalf("expected defaults, got %+v", got)
	}

	missing, err := LoadReportSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not fail: %v", err)
	}
	if missing.Fonts.Family != "THSarabunNew" {
		t.Fatalf("unexpected family %q", missing.Fonts.Family)
	}
}

func TestLoadReportSettingsOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	body := "institution: คณะวิทยาศาสตร์\nfonts:\n  dir: /opt/fonts\n  bold: Sarabun-Bold.ttf\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := LoadReportSettings(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Institution != "คณะวิทยาศาสตร์" {
		t.Fatalf("institution not applied: %q", got.Institution)
	}
	if got.Fonts.Dir != "/opt/fonts" || got.Fonts.Bold != "Sarabun-Bold.ttf" {
		t.Fatalf("fonts not applied: %+v", got.Fonts)
	}
	if got.Fonts.Regular != "THSarabunNew.ttf" {
		t.Fatalf("regular font should keep default, got %q", got.Fonts.Regular)
	}
	if got.Title != DefaultReportSettings().Title {
		t.Fatalf("title should keep default, got %q", got.Title)
	}
}

func TestLoadReportSettingsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("fonts: [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadReportSettings(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
