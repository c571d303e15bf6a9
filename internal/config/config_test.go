package config

import "testing"

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	if cfg.Owner != "you" {
		t.Errorf("Owner = %q, want you", cfg.Owner)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.Playlists.Curator != "tonearm" {
		t.Errorf("Curator = %q, want tonearm", cfg.Playlists.Curator)
	}
	if cfg.Playlists.RecommendedSize != 8 {
		t.Errorf("RecommendedSize = %d, want 8", cfg.Playlists.RecommendedSize)
	}
	if cfg.Notifications.LifespanMs != 3000 {
		t.Errorf("LifespanMs = %d, want 3000", cfg.Notifications.LifespanMs)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Owner:    "alex",
		LogLevel: "debug",
	}
	cfg.Playlists.RecommendedSize = 20

	applyDefaults(cfg)

	if cfg.Owner != "alex" {
		t.Errorf("Owner = %q, want alex", cfg.Owner)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.Playlists.RecommendedSize != 20 {
		t.Errorf("RecommendedSize = %d, want 20", cfg.Playlists.RecommendedSize)
	}
}

func TestExpandPath(t *testing.T) {
	if got := expandPath(""); got != "" {
		t.Errorf("expandPath(\"\") = %q, want empty", got)
	}
	if got := expandPath("/abs/path"); got != "/abs/path" {
		t.Errorf("expandPath(abs) = %q, want unchanged", got)
	}
	if got := expandPath("~/music"); got == "~/music" {
		t.Error("expandPath(~/music) did not expand")
	}
}
