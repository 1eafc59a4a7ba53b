package markdown

import (
	"strings"
	"testing"
)

type panicRenderer struct{}

func (panicRenderer) Render(string) (string, error) {
	panic("boom")
}

func TestRender_RecoversFromRendererPanic(t *testing.T) {
	key := cacheKey{style: StylePlain, width: 20}

	rendererMu.Lock()
	prev, hadPrev := renderers[key]
	renderers[key] = panicRenderer{}
	rendererMu.Unlock()

	defer func() {
		rendererMu.Lock()
		if hadPrev {
			renderers[key] = prev
		} else {
			delete(renderers, key)
		}
		rendererMu.Unlock()
	}()

	out := Render(StylePlain, 20, 0, "hello\n")
	if out != "hello" {
		t.Fatalf("expected fallback to original markdown, got %q", out)
	}
}

func TestRender_Empty(t *testing.T) {
	if out := Render(StylePlain, 40, 2, "  \n\n"); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}

func TestRender_IndentsAndWraps(t *testing.T) {
	input := "Learned how to structure the **auth** flow with refresh tokens and middleware."
	out := Render(StylePlain, 30, 4, input)
	if out == "" {
		t.Fatal("expected output")
	}
	for _, line := range strings.Split(out, "\n") {
		if line != "" && !strings.HasPrefix(line, "    ") {
			t.Fatalf("expected indented line, got %q", line)
		}
	}
	if !strings.Contains(out, "auth") {
		t.Fatalf("expected content preserved, got %q", out)
	}
}

func TestStyleFor(t *testing.T) {
	tests := []struct {
		color bool
		theme string
		want  Style
	}{
		{color: false, theme: "dark", want: StylePlain},
		{color: true, theme: "light", want: StyleLight},
		{color: true, theme: "dark", want: StyleDark},
	}
	for _, tt := range tests {
		if got := StyleFor(tt.color, tt.theme); got != tt.want {
			t.Errorf("StyleFor(%v, %q) = %v, want %v", tt.color, tt.theme, got, tt.want)
		}
	}
}
