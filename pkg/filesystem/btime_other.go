//go:build !linux

package filesystem

import "time"

func (o *osFS) BirthTime(string) (time.Time, bool) {
	return time.Time{}, false
}
