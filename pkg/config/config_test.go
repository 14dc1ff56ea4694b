package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	content := `summarizer:
  sentence_count: 3
  segmenter: prose
  tokenizer: ascii
  workers: 4
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Expected no error writing fixture, but got %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Expected no error, but got %v", err)
	}
	if cfg.Summarizer.SentenceCount != 3 {
		t.Errorf("Expected sentence_count 3, but got %d", cfg.Summarizer.SentenceCount)
	}
	if cfg.Summarizer.Segmenter != "prose" {
		t.Errorf("Expected segmenter 'prose', but got %q", cfg.Summarizer.Segmenter)
	}
	if cfg.Summarizer.Tokenizer != "ascii" {
		t.Errorf("Expected tokenizer 'ascii', but got %q", cfg.Summarizer.Tokenizer)
	}
	if cfg.Summarizer.Workers != 4 {
		t.Errorf("Expected workers 4, but got %d", cfg.Summarizer.Workers)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Errorf("Expected error for missing file")
	}
}
