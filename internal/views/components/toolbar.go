package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Menu entry labels. The two selects act as dropdown menus; a selection
// fires the action and the select snaps back to its placeholder.
const (
	menuLoadFile   = "Load…"
	menuFromWebcam = "From Webcam"
	menuFromScreen = "From Screen"
	menuSaveFile   = "Save…"

	menuChannelRed   = "Red"
	menuChannelGreen = "Green"
	menuChannelBlue  = "Blue"
)

// Toolbar is the single action surface: a File menu, a Channel menu and
// three direct transform buttons.
type Toolbar struct {
	container *fyne.Container

	fileSelect    *widget.Select
	channelSelect *widget.Select
	maskButton    *widget.Button
	sharpenButton *widget.Button
	rectButton    *widget.Button

	loadHandler      func()
	webcamHandler    func()
	screenHandler    func()
	saveHandler      func()
	channelHandler   func(string)
	maskHandler      func()
	sharpenHandler   func()
	rectangleHandler func()
}

func NewToolbar() *Toolbar {
	t := &Toolbar{}
	t.createComponents()
	t.buildLayout()
	return t
}

func (t *Toolbar) createComponents() {
	t.fileSelect = widget.NewSelect(
		[]string{menuLoadFile, menuFromWebcam, menuFromScreen, menuSaveFile},
		t.onFileAction,
	)
	t.fileSelect.PlaceHolder = "File"

	t.channelSelect = widget.NewSelect(
		[]string{menuChannelRed, menuChannelGreen, menuChannelBlue},
		t.onChannelAction,
	)
	t.channelSelect.PlaceHolder = "Channel"
	t.channelSelect.Disable()

	t.maskButton = widget.NewButton("Red Mask", func() {
		if t.maskHandler != nil {
			t.maskHandler()
		}
	})
	t.maskButton.Importance = widget.HighImportance
	t.maskButton.Disable()

	t.sharpenButton = widget.NewButton("Sharpen", func() {
		if t.sharpenHandler != nil {
			t.sharpenHandler()
		}
	})
	t.sharpenButton.Importance = widget.HighImportance
	t.sharpenButton.Disable()

	t.rectButton = widget.NewButton("Rectangle", func() {
		if t.rectangleHandler != nil {
			t.rectangleHandler()
		}
	})
	t.rectButton.Importance = widget.HighImportance
	t.rectButton.Disable()
}

func (t *Toolbar) buildLayout() {
	t.container = container.NewHBox(
		t.fileSelect,
		widget.NewSeparator(),
		t.channelSelect,
		widget.NewSeparator(),
		t.maskButton,
		t.sharpenButton,
		t.rectButton,
	)
}

func (t *Toolbar) onFileAction(selected string) {
	if selected == "" {
		return
	}
	t.fileSelect.ClearSelected()

	switch selected {
	case menuLoadFile:
		if t.loadHandler != nil {
			t.loadHandler()
		}
	case menuFromWebcam:
		if t.webcamHandler != nil {
			t.webcamHandler()
		}
	case menuFromScreen:
		if t.screenHandler != nil {
			t.screenHandler()
		}
	case menuSaveFile:
		if t.saveHandler != nil {
			t.saveHandler()
		}
	}
}

func (t *Toolbar) onChannelAction(selected string) {
	if selected == "" {
		return
	}
	t.channelSelect.ClearSelected()

	if t.channelHandler == nil {
		return
	}
	switch selected {
	case menuChannelRed:
		t.channelHandler("red")
	case menuChannelGreen:
		t.channelHandler("green")
	case menuChannelBlue:
		t.channelHandler("blue")
	}
}

// SetImageLoaded enables the transform actions once a buffer exists.
func (t *Toolbar) SetImageLoaded(loaded bool) {
	if loaded {
		t.channelSelect.Enable()
		t.maskButton.Enable()
		t.sharpenButton.Enable()
		t.rectButton.Enable()
	} else {
		t.channelSelect.Disable()
		t.maskButton.Disable()
		t.sharpenButton.Disable()
		t.rectButton.Disable()
	}
}

func (t *Toolbar) SetLoadHandler(handler func())          { t.loadHandler = handler }
func (t *Toolbar) SetWebcamHandler(handler func())        { t.webcamHandler = handler }
func (t *Toolbar) SetScreenHandler(handler func())        { t.screenHandler = handler }
func (t *Toolbar) SetSaveHandler(handler func())          { t.saveHandler = handler }
func (t *Toolbar) SetChannelHandler(handler func(string)) { t.channelHandler = handler }
func (t *Toolbar) SetMaskHandler(handler func())          { t.maskHandler = handler }
func (t *Toolbar) SetSharpenHandler(handler func())       { t.sharpenHandler = handler }
func (t *Toolbar) SetRectangleHandler(handler func())     { t.rectangleHandler = handler }

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}
