package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Brand color palette
var (
	colorPrimary      = lipgloss.Color("#667EEA") // Indigo - main brand
	colorPrimaryLight = lipgloss.Color("#8DA2F2") // Light indigo - highlights
	colorText         = lipgloss.Color("#F2F3F3") // Primary text
	colorMuted        = lipgloss.Color("240")     // Muted gray for secondary text

	// Status colors, matching the sheet's pill styling
	colorPassed  = lipgloss.Color("#22C55E") // green
	colorFailed  = lipgloss.Color("#EF4444") // red
	colorPending = lipgloss.Color("#F59E0B") // amber
	colorBlocked = lipgloss.Color("245")     // gray
)

// Styles
var (
	successStyle = lipgloss.NewStyle().Foreground(colorPassed).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorFailed).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(colorPrimary)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	labelStyle   = lipgloss.NewStyle().Foreground(colorPrimaryLight).Bold(true)
	valueStyle   = lipgloss.NewStyle().Foreground(colorText)

	statusPassedStyle  = lipgloss.NewStyle().Foreground(colorPassed).Bold(true)
	statusFailedStyle  = lipgloss.NewStyle().Foreground(colorFailed).Bold(true)
	statusPendingStyle = lipgloss.NewStyle().Foreground(colorPending).Bold(true)
	statusBlockedStyle = lipgloss.NewStyle().Foreground(colorBlocked).Bold(true)
)

// Icons
const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconInfo    = "●"
)

// statusStyle classifies a status value for styling: substring match on
// pass/fail/block, anything else (including free text) renders as pending.
func statusStyle(status string) lipgloss.Style {
	lower := strings.ToLower(status)
	switch {
	case strings.Contains(lower, "pass"):
		return statusPassedStyle
	case strings.Contains(lower, "fail"):
		return statusFailedStyle
	case strings.Contains(lower, "block"):
		return statusBlockedStyle
	default:
		return statusPendingStyle
	}
}

// renderStatus renders a status value with its pill style in TTY mode.
func renderStatus(status string) string {
	if status == "" {
		status = "Pending"
	}
	if !isTTY() {
		return status
	}
	return statusStyle(status).Render(status)
}

// isTTY returns true if stdout is a terminal
func isTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// printStyled prints a message with an icon, applying style only in TTY mode
func printStyled(w io.Writer, icon string, style lipgloss.Style, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if isTTY() {
		fmt.Fprintf(w, "%s %s\n", style.Render(icon), msg)
	} else {
		fmt.Fprintf(w, "%s %s\n", icon, msg)
	}
}

// printSuccess prints a success message with green checkmark
func printSuccess(w io.Writer, format string, args ...interface{}) {
	printStyled(w, iconSuccess, successStyle, format, args...)
}

// printError prints an error message with red X
func printError(w io.Writer, format string, args ...interface{}) {
	printStyled(w, iconError, errorStyle, format, args...)
}

// printInfo prints an info message with brand-colored dot
func printInfo(w io.Writer, format string, args ...interface{}) {
	printStyled(w, iconInfo, infoStyle, format, args...)
}

// printMuted prints muted/secondary text
func printMuted(w io.Writer, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if isTTY() {
		fmt.Fprintln(w, mutedStyle.Render(msg))
	} else {
		fmt.Fprintln(w, msg)
	}
}

// renderMarkdown renders markdown content with glamour
func renderMarkdown(content string) string {
	if !isTTY() {
		return content
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}

	return strings.TrimSpace(rendered)
}
