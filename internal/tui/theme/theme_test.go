package theme

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestCategoryTag_StableAndStyled(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI)
	th := Default()

	first := th.CategoryTag("WORLD")
	if !strings.Contains(first, "\x1b[") || !strings.Contains(first, "WORLD") {
		t.Fatalf("expected styled category tag, got %q", first)
	}
	if again := th.CategoryTag("WORLD"); again != first {
		t.Fatalf("expected same style for same category, got %q vs %q", again, first)
	}
	if got := th.CategoryTag("   "); got != "" {
		t.Fatalf("expected empty tag for blank category, got %q", got)
	}
}

func TestRenderActiveLine(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI)
	th := Default()

	if got := th.RenderActiveLine(false, "plain"); got != "plain" {
		t.Fatalf("expected inactive line untouched, got %q", got)
	}
	if got := th.RenderActiveLine(true, "hot"); !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected styled active line, got %q", got)
	}
}
