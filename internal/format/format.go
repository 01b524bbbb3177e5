// Package format renders byte counts and timestamps for terminal
// output. The display scale (SI vs IEC prefixes) is a presentation
// choice, separate from how size literals were parsed.
package format

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Scale prefixes, indexed by how many times the value was divided down.
// The zero-scale entries are blank so columns of mixed magnitudes line
// up.
var (
	decimalPrefixes = [...]string{" ", "K", "M", "G", "T", "P"}
	binaryPrefixes  = [...]string{"  ", "Ki", "Mi", "Gi", "Ti", "Pi"}
)

const sizeDigits = 3

// Size renders a byte count using the given display scale (1000 for SI
// prefixes, 1024 for IEC), rounded to three significant digits and
// right-justified to a fixed column width. Values beyond the prefix
// table fall back to an E suffix.
func Size(size float64, scale int) string {
	prefixes := decimalPrefixes[:]
	suffix := "E"
	if scale == 1024 {
		prefixes = binaryPrefixes[:]
		suffix = "Ei"
	}

	for _, prefix := range prefixes {
		if size < float64(scale) {
			return rightJustify(significant(size, sizeDigits)+prefix, sizeDigits+2+len(prefix))
		}
		size /= float64(scale)
	}
	return rightJustify(significant(size, sizeDigits)+suffix, sizeDigits+3)
}

// significant rounds to the given number of significant digits and
// renders integers without a decimal point.
func significant(num float64, digits int) string {
	if num == 0 {
		return "0"
	}
	rfact := digits - int(math.Log10(math.Abs(num))) - 1
	pow := math.Pow(10, float64(rfact))
	num = math.Round(num*pow) / pow
	if rfact <= 0 {
		return strconv.FormatInt(int64(num), 10)
	}
	return strconv.FormatFloat(num, 'f', -1, 64)
}

func rightJustify(s string, width int) string {
	return fmt.Sprintf("%*s", width, s)
}

// Date renders a timestamp compactly by leaving out leading components
// equal to the reference time: within the same day only the clock
// remains, within the same year the year is dropped. Once a component
// differs, everything after it is shown. A timestamp equal to the
// reference down to the second renders empty.
func Date(t, now time.Time) string {
	var year, month, day string
	if t.Year() != now.Year() {
		year = strconv.Itoa(t.Year())
	}
	if year != "" || t.Month() != now.Month() {
		month = fmt.Sprintf("%02d", int(t.Month()))
	}
	if month != "" || t.Day() != now.Day() {
		day = fmt.Sprintf("%02d", t.Day())
	}
	var dateStr string
	if year != "" || month != "" || day != "" {
		dateStr = year + "-" + month + "-" + day
	}

	var hour, minute, second string
	if dateStr != "" || t.Hour() != now.Hour() {
		hour = fmt.Sprintf("%02d", t.Hour())
	}
	if hour != "" || t.Minute() != now.Minute() {
		minute = fmt.Sprintf("%02d", t.Minute())
	}
	if minute != "" || t.Second() != now.Second() {
		second = fmt.Sprintf("%02d", t.Second())
	}
	var timeStr string
	if second != "" {
		timeStr = hour + ":" + minute + ":" + second
	}

	if dateStr != "" && timeStr != "" {
		return dateStr + "T" + timeStr
	}
	return dateStr + timeStr
}
