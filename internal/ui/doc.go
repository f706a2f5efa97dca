// Package ui provides the terminal interface for prayerclock.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. It never fetches anything itself: the
// poller in package app writes schedules into state.Store and the UI reads a
// snapshot once per tick. Everything user-facing is formatted here; package
// prayer only hands back slots, instants and durations.
//
// # Package Structure
//
//   - app.go: Model, Init/Update/View, tick and snapshot messages, Run
//   - countdown.go: next-prayer tracking and countdown formatting
//   - header.go: status bar and command bar
//   - timetable.go: the five-slot table
//   - logs.go: log file view backed by logtail and a viewport
//   - help.go: help overlay built from the key map
//   - labels.go: English and Arabic strings, chosen with x/text/language
//   - theme.go, style_helpers.go: palettes and lipgloss helpers
//
// # Countdown Flow
//
//  1. A tick stores the current time and asks the store for a snapshot
//  2. A table for another day is stale: the UI shows "Refresh required"
//     and requests a refresh
//  3. The next prayer is resolved from the table on every tick, so the
//     footer moves on the moment a prayer begins
//  4. CountdownTo gives the remaining time; a target that is still not in
//     the future after resolving is treated like a stale table
//  5. A table without Fajr past Isha cannot roll over; the UI shows
//     "No usable schedule" and requests a refresh
//
// # Key Bindings
//
//   - r: refresh now
//   - T: cycle theme (saved to prefs)
//   - L: toggle English/Arabic labels (saved to prefs)
//   - l: log view, esc to return
//   - ?: help
//   - q, ctrl+c: quit
package ui
