package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoad_EmptyPathGivesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Subtitles.Source != "user" {
		t.Errorf("source = %q; want user", cfg.Subtitles.Source)
	}
	if cfg.IncludeAuto() {
		t.Error("auto fallback should be off by default")
	}
	if cfg.Index.Name != "ta_subtitle" {
		t.Errorf("index name = %q", cfg.Index.Name)
	}
	if cfg.Fetch.TimeoutSec != 15 || cfg.Fetch.MaxBytes != 10_000_000 {
		t.Errorf("fetch defaults = %d / %d", cfg.Fetch.TimeoutSec, cfg.Fetch.MaxBytes)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "subalign.yaml")
	content := "videos_dir: /youtube\n" +
		"subtitles:\n" +
		"  languages: \"en, de\"\n" +
		"  source: AUTO\n" +
		"  index: true\n" +
		"index:\n" +
		"  url: http://es:9200\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.VideosDir != "/youtube" {
		t.Errorf("videos dir = %q", cfg.VideosDir)
	}
	// les champs absents gardent leurs defaults
	if cfg.Index.Name != "ta_subtitle" {
		t.Errorf("index name = %q; want default", cfg.Index.Name)
	}
	// la source est normalisée en minuscules
	if !cfg.IncludeAuto() {
		t.Error("source AUTO should enable auto fallback")
	}
	if !cfg.Subtitles.Index {
		t.Error("subtitle indexing should be enabled")
	}
	if got := cfg.Languages(); !reflect.DeepEqual(got, []string{"en", "de"}) {
		t.Errorf("languages = %#v", got)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("SUBALIGN_INDEX_URL", "http://other:9200")
	t.Setenv("SUBALIGN_INDEX_USER", "elastic")
	t.Setenv("SUBALIGN_INDEX_PASSWORD", "secret")

	cfg, _ := Load("")
	cfg.ApplyEnv()

	if cfg.Index.URL != "http://other:9200" {
		t.Errorf("url = %q", cfg.Index.URL)
	}
	if cfg.Index.Username != "elastic" || cfg.Index.Password != "secret" {
		t.Errorf("credentials = %q / %q", cfg.Index.Username, cfg.Index.Password)
	}
}

func TestLanguages_Parsing(t *testing.T) {
	cfg, _ := Load("")
	cfg.Subtitles.Languages = " en,,de , fr "
	if got := cfg.Languages(); !reflect.DeepEqual(got, []string{"en", "de", "fr"}) {
		t.Errorf("languages = %#v", got)
	}
}
