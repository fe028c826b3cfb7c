// Package ui formats rustdesk-id terminal output.
//
// Formatters colorize text when the terminal supports it. When NO_COLOR is
// set, or fatih/color decides the output is not a color terminal, they fall
// back to plain decorations instead:
//
//	ui.Code.Sprint("rustdesk-id decrypt")  // `rustdesk-id decrypt`
//	ui.Highlight.Sprint("alice")           // 'alice'
//	ui.Muted.Sprint("copied")              // (copied)
//
// Token output is never decorated, so it can be copied or piped as is.
package ui
