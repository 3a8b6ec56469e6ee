// Package style holds the lipgloss palette and styles of photosort's
// terminal output. Colors adapt to light and dark backgrounds; renderers
// bound to a non-terminal drop them.
package style
