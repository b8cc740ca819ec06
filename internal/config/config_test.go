// config_test.go — Tests for environment-driven configuration.
package config

import (
	"testing"

	"github.com/prepwise/exam-prep-api/internal/services/pdf"
)

// clearEnv blanks every variable Load reads so ambient shell state (or a
// developer's .env) can't leak into assertions.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "GIN_MODE", "OPENROUTER_API_KEY", "OPENROUTER_MODEL",
		"OPENROUTER_BASE_URL", "PDF_ENGINE", "API_KEY", "MAX_PDF_SIZE_MB",
		"DEFAULT_RATE_LIMIT", "CORS_ORIGIN",
	} {
		t.Setenv(key, "")
	}
	// t.Setenv("X", "") leaves the variable set-but-empty, which is what
	// getEnv treats as "set"; override the ones with non-empty defaults.
	t.Setenv("PORT", "8080")
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("PDF_ENGINE", string(pdf.EngineLedongthuc))
	t.Setenv("MAX_PDF_SIZE_MB", "10")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.PDFEngine != pdf.EngineLedongthuc {
		t.Errorf("PDFEngine = %q, want %q", cfg.PDFEngine, pdf.EngineLedongthuc)
	}
	if cfg.MaxPDFSizeBytes() != 10<<20 {
		t.Errorf("MaxPDFSizeBytes = %d, want %d", cfg.MaxPDFSizeBytes(), 10<<20)
	}
}

func TestLoadRejectsUnknownEngine(t *testing.T) {
	clearEnv(t)
	t.Setenv("PDF_ENGINE", "pdfjs")

	if _, err := Load(); err == nil {
		t.Error("Load accepted an unknown PDF_ENGINE")
	}
}

func TestLoadRejectsNonPositiveSize(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAX_PDF_SIZE_MB", "-1")

	if _, err := Load(); err == nil {
		t.Error("Load accepted a negative MAX_PDF_SIZE_MB")
	}
}

func TestLoadReleaseRequiresModelKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("GIN_MODE", "release")

	if _, err := Load(); err == nil {
		t.Error("Load started a release instance without OPENROUTER_API_KEY")
	}

	t.Setenv("OPENROUTER_API_KEY", "sk-test")
	if _, err := Load(); err != nil {
		t.Errorf("Load failed with a model key present: %v", err)
	}
}

func TestLoadAlternateEngine(t *testing.T) {
	clearEnv(t)
	t.Setenv("PDF_ENGINE", string(pdf.EngineRSCPDF))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.PDFEngine != pdf.EngineRSCPDF {
		t.Errorf("PDFEngine = %q, want %q", cfg.PDFEngine, pdf.EngineRSCPDF)
	}
}
