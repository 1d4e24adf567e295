package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// FontName identifies one of the faces registered at startup. Systems fetch
// faces by name so sizes live in one place (main) instead of per call site.
type FontName string

const (
	HUD   FontName = "hud"   // level id and debug readout
	Bold  FontName = "bold"  // menu options
	Title FontName = "title" // scene titles
	Small FontName = "small" // input hints
)

var faces = map[FontName]font.Face{}

// LoadFontWithSize parses ttf and registers a face under name. Called once
// per face before the game loop starts; a bad font file is fatal.
func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	parsed, err := truetype.Parse(ttf)
	if err != nil {
		panic(fmt.Sprintf("parse font %s: %v", name, err))
	}
	faces[name] = truetype.NewFace(parsed, &truetype.Options{
		Size:    size,
		Hinting: font.HintingFull,
	})
}

func (f FontName) Get() font.Face {
	face, ok := faces[f]
	if !ok {
		panic(fmt.Sprintf("font %s not loaded", f))
	}
	return face
}
