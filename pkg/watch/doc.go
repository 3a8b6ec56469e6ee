// Package watch sorts files as they appear in source directories.
//
// A Watcher turns fsnotify notifications into Events, a Handler decides
// which events lead to sorting a file, and Serve ties the two together on a
// single goroutine so events are handled one at a time in arrival order.
package watch
