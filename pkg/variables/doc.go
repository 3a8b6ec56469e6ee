// Package variables provides the template variables available when sorting
// a file.
//
// Every variable reads from the private ":file.path" variable seeded by
// NewContext, so a context built here is bound to exactly one file. The
// families are:
//
//	file.path file.name file.stem file.extension
//	file.name.date[.year|.month|.day]          date found in the file name
//	file.md.creation_date[.year|.month|.day]   filesystem creation time
//	exif.date[.year|.month|.day]               EXIF DateTime
//	date[.year|.month|.day]                    exif.date, else file.md.creation_date
package variables
