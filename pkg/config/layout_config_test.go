package config

import "testing"

// TestTitleFontSize tests the responsive title sizes at each breakpoint.
func TestTitleFontSize(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		expected float64
	}{
		{"phone", 375, 48},
		{"just below medium", BreakpointMedium - 1, 48},
		{"medium", BreakpointMedium, 72},
		{"large", BreakpointLarge, 96},
		{"desktop", 1920, 96},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TitleFontSize(tt.width); got != tt.expected {
				t.Errorf("TitleFontSize(%d) = %.1f, want %.1f", tt.width, got, tt.expected)
			}
		})
	}
}

func TestSubtitleFontSize(t *testing.T) {
	if got := SubtitleFontSize(500); got != 18 {
		t.Errorf("SubtitleFontSize(500) = %.1f, want 18", got)
	}
	if got := SubtitleFontSize(900); got != 20 {
		t.Errorf("SubtitleFontSize(900) = %.1f, want 20", got)
	}
}

// TestCursorGeometry keeps the cursor's tinted fill inside the ring.
func TestCursorGeometry(t *testing.T) {
	if CursorInnerInset <= 0 || CursorInnerInset >= CursorRadius {
		t.Errorf("CursorInnerInset %.1f must be within (0, %.1f)", CursorInnerInset, CursorRadius)
	}
	if CursorInnerAlpha <= 0 || CursorInnerAlpha > 1 {
		t.Errorf("CursorInnerAlpha %.2f out of range", CursorInnerAlpha)
	}
}
