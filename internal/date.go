package internal

import (
	"fmt"
	"time"
)

// exifTimeLayout is the timestamp format used by EXIF date fields.
const exifTimeLayout = "2006:01:02 15:04:05"

// dateFields are the metadata fields probed for a capture date, in
// priority order. The first field that is present and parseable wins.
var dateFields = []string{
	"EXIF DateTimeOriginal",
	"EXIF DateTime",
	"Image DateTime",
}

// CalendarDate is a year-month-day value with no time component.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// String formats the date as zero-padded YYYY-MM-DD.
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// ExtractDate probes fields for a capture timestamp and returns the first
// one that parses. A malformed value is skipped in favor of the next
// candidate field rather than aborting the extraction.
func ExtractDate(fields FieldMap) (CalendarDate, bool) {
	for _, name := range dateFields {
		raw, ok := fields[name]
		if !ok {
			continue
		}
		t, err := time.Parse(exifTimeLayout, raw)
		if err != nil {
			continue
		}
		return CalendarDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}, true
	}
	return CalendarDate{}, false
}
