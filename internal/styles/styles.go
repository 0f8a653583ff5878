// Package styles provides terminal color and formatting utilities for relink
// tooling output. It includes functions for success, error, warning, and info
// styled text used by the mage build tasks.
package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Color palette for relink
var (
	// Primary colors
	Primary = lipgloss.Color("#3584E4") // Blue
	Accent  = lipgloss.Color("#F6D32D") // Yellow

	// Status colors
	SuccessColor = lipgloss.Color("#2EC27E") // Green
	WarningColor = lipgloss.Color("#FF7800") // Orange
	ErrorColor   = lipgloss.Color("#E01B24") // Red
	InfoColor    = lipgloss.Color("#62A0EA") // Light blue

	// Text colors
	Text    = lipgloss.Color("#FAFAFA") // Light
	TextDim = lipgloss.Color("#9A9996") // Dim

	// Background colors
	BackgroundAlt = lipgloss.Color("#303030") // Alternate background
)

// Base styles for common output elements
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			PaddingTop(1).
			PaddingBottom(1)

	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(SuccessColor)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ErrorColor)

	WarningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(WarningColor)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	BoldStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Text)

	DimStyle = lipgloss.NewStyle().
			Foreground(TextDim)

	CodeStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Background(BackgroundAlt).
			PaddingLeft(1).
			PaddingRight(1)
)

// Convenience functions for commonly used styled text
func Success(text string) string {
	return SuccessStyle.Render("✓ " + text)
}

func Error(text string) string {
	return ErrorStyle.Render("✗ " + text)
}

func Warning(text string) string {
	return WarningStyle.Render("⚠ " + text)
}

func Info(text string) string {
	return InfoStyle.Render("ℹ " + text)
}

func Header(text string) string {
	return HeaderStyle.Render("🔗 " + text)
}

func Bold(text string) string {
	return BoldStyle.Render(text)
}

func Dim(text string) string {
	return DimStyle.Render(text)
}

func Code(text string) string {
	return CodeStyle.Render(text)
}

func Example(command, description string) string {
	return "  " + Code(command) + " - " + Dim(description)
}

// Build artifact styles
func Artifact(kind, path string) string {
	return DimStyle.Render("  "+kind+": ") + Bold(path)
}

func StepProgress(step, message string) string {
	return InfoStyle.Render(fmt.Sprintf("🔄 [%s] %s", step, message))
}
