package views

import (
	"image"

	"image-workbench/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

// MainView owns the window content: toolbar on top, image display in the
// center, status bar at the bottom. All state lives in the controller;
// the view only renders and forwards events.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	toolbar       *components.Toolbar
	imageDisplay  *components.ImageDisplay
	statusBar     *components.StatusBar
}

func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window:       window,
		toolbar:      components.NewToolbar(),
		imageDisplay: components.NewImageDisplay(),
		statusBar:    components.NewStatusBar(),
	}

	view.mainContainer = container.NewBorder(
		view.toolbar.GetContainer(),
		view.statusBar.GetContainer(),
		nil,
		nil,
		view.imageDisplay.GetContainer(),
	)
	window.SetContent(view.mainContainer)

	return view
}

// Event handler setters, called by the controller.

func (mv *MainView) SetLoadHandler(handler func())    { mv.toolbar.SetLoadHandler(handler) }
func (mv *MainView) SetWebcamHandler(handler func())  { mv.toolbar.SetWebcamHandler(handler) }
func (mv *MainView) SetScreenHandler(handler func())  { mv.toolbar.SetScreenHandler(handler) }
func (mv *MainView) SetSaveHandler(handler func())    { mv.toolbar.SetSaveHandler(handler) }
func (mv *MainView) SetChannelHandler(h func(string)) { mv.toolbar.SetChannelHandler(h) }
func (mv *MainView) SetMaskHandler(handler func())    { mv.toolbar.SetMaskHandler(handler) }
func (mv *MainView) SetSharpenHandler(handler func()) { mv.toolbar.SetSharpenHandler(handler) }
func (mv *MainView) SetRectangleHandler(h func())     { mv.toolbar.SetRectangleHandler(h) }

// UI update methods, called by the controller.

// SetImage shows a new buffer and resizes the window around it.
func (mv *MainView) SetImage(img image.Image) {
	mv.imageDisplay.SetImage(img)
	mv.toolbar.SetImageLoaded(true)

	displayWidth, displayHeight := mv.imageDisplay.DisplaySize()
	mv.window.Resize(fyne.NewSize(
		float32(displayWidth)+40,
		float32(displayHeight)+120,
	))
}

func (mv *MainView) UpdateStatus(message string) {
	mv.statusBar.UpdateStatus(message)
}

func (mv *MainView) SetImageInfo(width, height int, format, source string) {
	mv.statusBar.SetImageInfo(width, height, format, source)
}

func (mv *MainView) SetMemoryInfo(usedBytes int64) {
	mv.statusBar.SetMemoryInfo(usedBytes)
}

// Dialog helpers.

func (mv *MainView) ShowError(err error) {
	dialog.ShowError(err, mv.window)
}

// ShowWarning is for recoverable conditions like acting with no image.
func (mv *MainView) ShowWarning(title, message string) {
	dialog.ShowInformation(title, message, mv.window)
}

func (mv *MainView) ShowConfirm(title, message string, callback func(bool)) {
	dialog.ShowConfirm(title, message, callback, mv.window)
}

// PromptInt asks for one integer in [min,max].
func (mv *MainView) PromptInt(title, label string, min, max int, onSubmit func(int), onCancel func()) {
	components.PromptInt(mv.window, title, label, min, max, onSubmit, onCancel)
}

func (mv *MainView) Window() fyne.Window {
	return mv.window
}

func (mv *MainView) Show() {
	mv.window.Show()
}
