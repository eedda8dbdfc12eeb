// Package models holds the records stored in the auth database.
package models

import "time"

// TimestampLayout matches SQLite's CURRENT_TIMESTAMP text, so values written
// by the repositories sort and compare with column defaults.
const TimestampLayout = "2006-01-02 15:04:05"

// FormatTimestamp renders t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
