package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"

	"github.com/benoitkugler/pathplot/plot"
	"github.com/benoitkugler/pathplot/plotraster"
)

// showWindow rasterizes the figure in a window, resized with it.
func showWindow(fig *plot.Figure) error {
	a := app.New()
	title := fig.Title
	if title == "" {
		title = "pathplot"
	}
	w := a.NewWindow(title)

	img := canvas.NewImageFromImage(plotraster.Rasterize(fig))
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(float32(fig.Width)/2, float32(fig.Height)/2))
	w.SetContent(img)
	w.Resize(fyne.NewSize(float32(fig.Width), float32(fig.Height)))
	w.ShowAndRun()
	return nil
}
