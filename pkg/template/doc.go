// Package template implements the path template language used to compute
// destination paths.
//
// A template is literal text with variables wrapped in ':' delimiters:
//
//	/photos/:date.year:/:date.month:/:file.name:
//
// There are no conditionals, loops or escapes. Variables are resolved
// through a Context, which binds variable names to Providers and memoizes
// their values for the lifetime of one sorted file.
package template
