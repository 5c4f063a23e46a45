package cli

import (
	"github.com/alexanderramin/attendance/internal/cli/formatter"
	"github.com/alexanderramin/attendance/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func attendanceHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// kindSelect returns a huh.Select over the two action kinds.
func kindSelect(value *string) *huh.Select[string] {
	return huh.NewSelect[string]().
		Title("Action").
		Options(
			huh.NewOption("Check in", string(domain.ActionCheckIn)),
			huh.NewOption("Check out", string(domain.ActionCheckOut)),
		).
		Value(value)
}

// actionTimeInput returns a huh.Input validated against the store's
// timestamp layout.
func actionTimeInput(value *string) *huh.Input {
	return huh.NewInput().
		Title("Time (YYYY-MM-DD hh:mm AM/PM)").
		Placeholder("2020-04-01 09:00 AM").
		Value(value).
		Validate(validateActionTime)
}

// recordForm collects whichever of kind and time were not given as flags.
func recordForm(kind, timestamp *string) *huh.Form {
	var fields []huh.Field
	if *kind == "" {
		fields = append(fields, kindSelect(kind))
	}
	if *timestamp == "" {
		fields = append(fields, actionTimeInput(timestamp))
	}
	return huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(attendanceHuhTheme()).
		WithShowHelp(false)
}

func validateActionTime(s string) error {
	_, err := domain.ParseActionTime(s)
	return err
}
