// Package ui provides theme and color support for the application's user interface.
// It defines the palette shared by the terminal UI and the plain output of
// scripted runs, and honours --no-color and NO_COLOR.
package ui
