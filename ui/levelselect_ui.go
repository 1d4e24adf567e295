package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// LevelSelectUI holds the ebitenui interface for the level select screen
type LevelSelectUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnSelect func(levelID string)
	OnBack   func()

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewLevelSelectUI creates a level select screen listing the given levels in
// order. The level matching savedLevel is annotated as the saved game.
func NewLevelSelectUI(levelIDs []string, savedLevel string, onSelect func(string), onBack func()) *LevelSelectUI {
	lui := &LevelSelectUI{
		OnSelect: onSelect,
		OnBack:   onBack,
	}

	lui.loadFonts()
	lui.buildUI(levelIDs, savedLevel)

	return lui
}

func (lui *LevelSelectUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	// Sized to fit the 640x360 screen
	lui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   18,
	}
	lui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	lui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (lui *LevelSelectUI) buildUI(levelIDs []string, savedLevel string) {
	// Root container with AnchorLayout to fill the screen
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// Content container with vertical layout, centered
	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("SELECT LEVEL", &lui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	for _, id := range levelIDs {
		levelID := id // Capture for closure
		label := levelID
		if levelID == savedLevel {
			label += "  (saved)"
		}

		levelButton := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(180, 24),
			),
			widget.ButtonOpts.Image(lui.buttonImage()),
			widget.ButtonOpts.Text(label, &lui.normalFace, &widget.ButtonTextColor{
				Idle:    color.RGBA{255, 255, 255, 255},
				Hover:   color.RGBA{255, 255, 200, 255},
				Pressed: color.RGBA{200, 200, 200, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if lui.OnSelect != nil {
					lui.OnSelect(levelID)
				}
			}),
		)
		contentContainer.AddChild(levelButton)
	}

	backButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(180, 24),
		),
		widget.ButtonOpts.Image(lui.buttonImage()),
		widget.ButtonOpts.Text("Back", &lui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{180, 180, 180, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if lui.OnBack != nil {
				lui.OnBack()
			}
		}),
	)
	contentContainer.AddChild(backButton)

	rootContainer.AddChild(contentContainer)

	lui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (lui *LevelSelectUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (lui *LevelSelectUI) Update() {
	lui.UI.Update()
}
