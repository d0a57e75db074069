package components

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	xdraw "golang.org/x/image/draw"
)

// Display area ceiling; larger buffers are scaled down for the canvas
// while the session keeps full resolution.
const (
	maxDisplayWidth  = 1280
	maxDisplayHeight = 800
)

// ImageDisplay shows the current buffer, scaled to fit the display
// ceiling with Catmull-Rom resampling.
type ImageDisplay struct {
	container *fyne.Container
	image     *canvas.Image

	displayWidth  int
	displayHeight int
}

func NewImageDisplay() *ImageDisplay {
	img := canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScaleSmooth

	return &ImageDisplay{
		container: container.NewStack(img),
		image:     img,
	}
}

// SetImage replaces the displayed image.
func (d *ImageDisplay) SetImage(src image.Image) {
	display := fitForDisplay(src)
	bounds := display.Bounds()
	d.displayWidth = bounds.Dx()
	d.displayHeight = bounds.Dy()

	d.image.Image = display
	d.image.SetMinSize(fyne.NewSize(float32(d.displayWidth), float32(d.displayHeight)))
	d.image.Refresh()
}

// DisplaySize returns the size of the image as shown, after fitting.
func (d *ImageDisplay) DisplaySize() (int, int) {
	return d.displayWidth, d.displayHeight
}

func (d *ImageDisplay) GetContainer() *fyne.Container {
	return d.container
}

// fitForDisplay scales src down to the display ceiling, preserving the
// aspect ratio. Images within the ceiling pass through untouched.
func fitForDisplay(src image.Image) image.Image {
	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width <= maxDisplayWidth && height <= maxDisplayHeight {
		return src
	}

	scaleW := float64(maxDisplayWidth) / float64(width)
	scaleH := float64(maxDisplayHeight) / float64(height)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}

	newWidth := int(float64(width) * scale)
	newHeight := int(float64(height) * scale)
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)
	return dst
}
