package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar shows the last action, the current buffer's info and native
// memory in use.
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	imageLabel  *widget.Label
	memoryLabel *widget.Label
}

func NewStatusBar() *StatusBar {
	s := &StatusBar{
		statusLabel: widget.NewLabel("Ready"),
		imageLabel:  widget.NewLabel("No image"),
		memoryLabel: widget.NewLabel(""),
	}

	s.container = container.NewHBox(
		s.statusLabel,
		widget.NewSeparator(),
		s.imageLabel,
		widget.NewSeparator(),
		s.memoryLabel,
	)
	return s
}

func (s *StatusBar) UpdateStatus(message string) {
	s.statusLabel.SetText(message)
}

func (s *StatusBar) SetImageInfo(width, height int, format, source string) {
	s.imageLabel.SetText(fmt.Sprintf("%dx%d %s (%s)", width, height, format, source))
}

func (s *StatusBar) ClearImageInfo() {
	s.imageLabel.SetText("No image")
}

func (s *StatusBar) SetMemoryInfo(usedBytes int64) {
	s.memoryLabel.SetText(fmt.Sprintf("%.1f MB native", float64(usedBytes)/(1024*1024)))
}

func (s *StatusBar) GetContainer() *fyne.Container {
	return s.container
}
