package components

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// PromptInt shows a modal integer prompt. Dismissing the dialog or
// entering an unparseable value calls onCancel; a valid integer within
// [min,max] calls onSubmit. The prompt itself never touches any state.
func PromptInt(win fyne.Window, title, label string, min, max int, onSubmit func(int), onCancel func()) {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(fmt.Sprintf("%d–%d", min, max))

	items := []*widget.FormItem{
		widget.NewFormItem(label, entry),
	}

	form := dialog.NewForm(title, "OK", "Cancel", items, func(confirmed bool) {
		if !confirmed {
			if onCancel != nil {
				onCancel()
			}
			return
		}

		value, err := strconv.Atoi(strings.TrimSpace(entry.Text))
		if err != nil || value < min || value > max {
			dialog.ShowInformation("Invalid Value",
				fmt.Sprintf("Enter an integer between %d and %d.", min, max), win)
			if onCancel != nil {
				onCancel()
			}
			return
		}
		onSubmit(value)
	}, win)

	form.Show()
}
