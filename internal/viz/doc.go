// Package viz renders finished runs in the terminal.
//
//   - [PlotFreeFall], [PlotWing]: static asciigraph charts of a run
//   - [Summary]: lipgloss key/value block for parameters and metrics
//   - [Live]: Bubble Tea model that replays a run frame by frame
//
// # Key Bindings
//
//	Space - Pause/Resume replay
//	R     - Restart from the first record
//	+/-   - Replay speed
//	Q     - Quit
package viz
