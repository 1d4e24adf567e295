package assets

import (
	"embed"
	"fmt"
	"image/color"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:audio
	audioFS embed.FS
)

// LevelFS exposes the embedded level files for the tilemap loader.
func LevelFS() fs.FS {
	return levelFS
}

var (
	tileColor   = color.RGBA{R: 90, G: 105, B: 136, A: 255}
	tileEdge    = color.RGBA{R: 60, G: 70, B: 95, A: 255}
	playerColor = color.RGBA{R: 255, G: 140, B: 0, A: 255}

	tileImages   = map[int]*ebiten.Image{}
	playerImages = map[[2]int]*ebiten.Image{}
)

// TileImage returns the shared image used for every solid cell of the
// given size. Images are built on demand and cached forever.
func TileImage(cellSize int) *ebiten.Image {
	if img, ok := tileImages[cellSize]; ok {
		return img
	}
	if cellSize <= 0 {
		panic(fmt.Sprintf("invalid tile size %d", cellSize))
	}

	img := ebiten.NewImage(cellSize, cellSize)
	img.Fill(tileEdge)
	if cellSize > 2 {
		inner := ebiten.NewImage(cellSize-2, cellSize-2)
		inner.Fill(tileColor)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(1, 1)
		img.DrawImage(inner, op)
		inner.Deallocate()
	}

	tileImages[cellSize] = img
	return img
}

// PlayerImage returns the cached player sprite for the given pixel size.
func PlayerImage(w, h int) *ebiten.Image {
	key := [2]int{w, h}
	if img, ok := playerImages[key]; ok {
		return img
	}
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("invalid player size %dx%d", w, h))
	}

	img := ebiten.NewImage(w, h)
	img.Fill(playerColor)

	playerImages[key] = img
	return img
}
