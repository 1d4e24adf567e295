package fonts

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadAndGet(t *testing.T) {
	LoadFontWithSize(HUD, goregular.TTF, 14)

	face := HUD.Get()
	if face == nil {
		t.Fatal("Get returned nil face")
	}
	if h := face.Metrics().Height; h <= 0 {
		t.Errorf("face height = %v, want > 0", h)
	}
}

func TestGetUnloadedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Get on an unloaded name should panic")
		}
	}()
	FontName("missing").Get()
}
