// Package terminal draws frames to a terminal.
//
// Raw ANSI control sequences are isolated behind [Control] so that the
// rendering code never embeds them directly. [Renderer] is the default
// display: it hides the cursor for the session, erases the previous frame
// either by homing the cursor and overwriting in place ([StrategyHome]) or by
// clearing the screen ([StrategyClear]), and restores the cursor on close.
//
// [TUI] is an alternative display backed by Bubble Tea, drawing on the
// alternate screen with a status row for log output.
package terminal
