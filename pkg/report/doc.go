// Package report renders sort and watch results for people.
//
// A Reporter writes one line per result and, for batch runs, a summary
// table. Colors are used only when the output is a color-capable terminal
// and NO_COLOR is unset; everything else gets plain text, which is also
// what the golden files under testdata/golden hold.
package report
