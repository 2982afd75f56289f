// Package viz renders the wind simulation in the terminal: a braille
// canvas for particle plots and a bubbletea model for the live view.
package viz
