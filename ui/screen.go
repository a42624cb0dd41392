package ui

import (
	"image/color"

	cfg "github.com/automoto/huskyhunt/config"
	"github.com/automoto/huskyhunt/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// titleScreen is a full-window panel with a centered title and one button at
// the configured spot.
type titleScreen struct {
	UI     *ebitenui.UI
	title  *widget.Label
	button *widget.Button

	titleFace  text.Face
	buttonFace text.Face
}

func newTitleScreen(title, buttonLabel string, onClick func()) *titleScreen {
	ts := &titleScreen{
		titleFace:  fonts.Face(32),
		buttonFace: fonts.Face(14),
	}

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	titleBox := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	ts.title = widget.NewLabel(
		widget.LabelOpts.Text(title, &ts.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	)
	titleBox.AddChild(ts.title)
	rootContainer.AddChild(titleBox)

	// The button sits at a fixed offset from the top-left corner.
	padding := widget.Insets{Left: cfg.Menu.ButtonX, Top: cfg.Menu.ButtonY}
	buttonLayer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	ts.button = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Menu.ButtonWidth, cfg.Menu.ButtonHeight),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(buttonLabel, &ts.buttonFace, &widget.ButtonTextColor{
			Idle:    cfg.Menu.TextColor,
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
	buttonLayer.AddChild(ts.button)
	rootContainer.AddChild(buttonLayer)

	ts.UI = &ebitenui.UI{
		Container: rootContainer,
	}
	return ts
}

func (ts *titleScreen) setTitle(title string) {
	ts.title.Label = title
}

func buttonImage() *widget.ButtonImage {
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
