package controllers

import (
	"context"
	"errors"
	"fmt"

	"image-workbench/internal/logger"
	"image-workbench/internal/models"
	"image-workbench/internal/services"
	"image-workbench/internal/transforms"
	"image-workbench/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// Rectangle corners accept any non-negative coordinate; OpenCV clips
// outlines that fall outside the buffer.
const maxCoordinate = 32767

// MainController connects the toolbar actions to the services. Parameter
// gathering (prompts) happens here at the view boundary; the transforms
// themselves stay pure. Every action runs to completion on the event
// thread, so failures surface before the next action can start.
type MainController struct {
	imageService   *services.ImageService
	editingService *services.EditingService
	session        *models.Session
	view           *views.MainView
	log            logger.Logger
	ctx            context.Context
}

func NewMainController(
	ctx context.Context,
	imageService *services.ImageService,
	editingService *services.EditingService,
	session *models.Session,
	log logger.Logger,
) *MainController {
	return &MainController{
		ctx:            ctx,
		imageService:   imageService,
		editingService: editingService,
		session:        session,
		log:            log,
	}
}

// SetMainView attaches the view and wires its events.
func (mc *MainController) SetMainView(view *views.MainView) {
	mc.view = view

	view.SetLoadHandler(mc.LoadImage)
	view.SetWebcamHandler(mc.CaptureWebcam)
	view.SetScreenHandler(mc.CaptureScreen)
	view.SetSaveHandler(mc.SaveImage)
	view.SetChannelHandler(mc.ExtractChannel)
	view.SetMaskHandler(mc.ApplyMask)
	view.SetSharpenHandler(mc.ApplySharpen)
	view.SetRectangleHandler(mc.DrawRectangle)
}

func imageFileFilter() storage.FileFilter {
	return storage.NewExtensionFileFilter([]string{".png", ".jpg", ".jpeg"})
}

// LoadImage opens the file dialog and installs the chosen image.
func (mc *MainController) LoadImage() {
	fileOpen := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			mc.reportError("load", err)
			return
		}
		if reader == nil {
			return // dialog dismissed
		}

		data, err := mc.imageService.LoadFromReader(mc.ctx, reader)
		if err != nil {
			mc.reportError("load", err)
			return
		}
		mc.refreshDisplay(data, "Loaded "+reader.URI().Name())
	}, mc.view.Window())

	fileOpen.SetFilter(imageFileFilter())
	fileOpen.Show()
}

// CaptureWebcam reads one frame from the configured camera.
func (mc *MainController) CaptureWebcam() {
	data, err := mc.imageService.CaptureWebcam(mc.ctx)
	if err != nil {
		mc.reportError("webcam", err)
		return
	}
	mc.refreshDisplay(data, "Captured webcam frame")
}

// CaptureScreen grabs the active display.
func (mc *MainController) CaptureScreen() {
	data, err := mc.imageService.CaptureScreen(mc.ctx)
	if err != nil {
		mc.reportError("screen", err)
		return
	}
	mc.refreshDisplay(data, "Captured screen")
}

// SaveImage writes the current buffer through the file save dialog.
func (mc *MainController) SaveImage() {
	if !mc.session.HasImage() {
		mc.warnNoImage()
		return
	}

	fileSave := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			mc.reportError("save", err)
			return
		}
		if writer == nil {
			return // dialog dismissed
		}

		if err := mc.imageService.Save(mc.ctx, writer); err != nil {
			mc.reportError("save", err)
			return
		}
		mc.view.UpdateStatus("Saved " + writer.URI().Name())
	}, mc.view.Window())

	fileSave.SetFileName("workbench.png")
	fileSave.SetFilter(imageFileFilter())
	fileSave.Show()
}

// ExtractChannel replaces the buffer with the selected plane in all
// three channels.
func (mc *MainController) ExtractChannel(channel string) {
	mc.applyTransform("channel", transforms.Params{"channel": channel})
}

// ApplyMask prompts for a threshold and binarizes against the red plane.
// A dismissed prompt aborts silently.
func (mc *MainController) ApplyMask() {
	if !mc.session.HasImage() {
		mc.warnNoImage()
		return
	}

	mc.view.PromptInt("Red Mask", "Threshold", 0, 255, func(threshold int) {
		mc.applyTransform("red_mask", transforms.Params{"threshold": threshold})
	}, nil)
}

// ApplySharpen runs the fixed sharpening kernel.
func (mc *MainController) ApplySharpen() {
	mc.applyTransform("sharpen", nil)
}

// DrawRectangle prompts for the two corners, one coordinate at a time,
// then draws the outline. Dismissing any prompt aborts the whole action
// with no side effect.
func (mc *MainController) DrawRectangle() {
	if !mc.session.HasImage() {
		mc.warnNoImage()
		return
	}

	mc.view.PromptInt("Rectangle", "x1", 0, maxCoordinate, func(x1 int) {
		mc.view.PromptInt("Rectangle", "y1", 0, maxCoordinate, func(y1 int) {
			mc.view.PromptInt("Rectangle", "x2", 0, maxCoordinate, func(x2 int) {
				mc.view.PromptInt("Rectangle", "y2", 0, maxCoordinate, func(y2 int) {
					mc.applyTransform("rectangle", transforms.Params{
						"x1": x1, "y1": y1, "x2": x2, "y2": y2,
					})
				}, nil)
			}, nil)
		}, nil)
	}, nil)
}

func (mc *MainController) applyTransform(name string, params transforms.Params) {
	data, err := mc.editingService.Apply(name, params)
	if err != nil {
		mc.handleTransformError(err)
		return
	}

	status := name
	if record, ok := mc.editingService.History().Latest(); ok {
		status = fmt.Sprintf("%s (%d ms)", record.Operation, record.Duration.Milliseconds())
	}
	mc.refreshDisplay(data, status)
}

func (mc *MainController) refreshDisplay(data *models.ImageData, status string) {
	mc.view.SetImage(data.Image)
	mc.view.SetImageInfo(data.Width, data.Height, data.Format, data.Source)
	mc.view.UpdateStatus(status)
}

func (mc *MainController) handleTransformError(err error) {
	if errors.Is(err, services.ErrNoImage) {
		mc.warnNoImage()
		return
	}
	mc.log.Error("MainController", err, nil)
	mc.view.ShowError(err)
}

func (mc *MainController) reportError(operation string, err error) {
	if errors.Is(err, services.ErrNoImage) {
		mc.warnNoImage()
		return
	}
	mc.log.Error("MainController", err, map[string]interface{}{
		"operation": operation,
	})
	mc.view.ShowError(err)
}

func (mc *MainController) warnNoImage() {
	mc.view.ShowWarning("No Image", "Please load an image first")
}

func (mc *MainController) Shutdown() {
	mc.log.Debug("MainController", "shutdown", nil)
}
