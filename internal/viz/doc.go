// Package viz renders easing curves and recorded traces for the terminal.
//
// Plots are drawn with asciigraph. Colours and panel styles come from the
// active Theme and are rendered with lipgloss.
//
// # Example
//
//	fmt.Println(viz.PlotEasing("back-out", easing.BackOut, viz.PlotSize{Width: 60, Height: 12}))
//	fmt.Println(viz.PlotTrace(result, viz.PlotSize{Width: 80, Height: 15}))
package viz
