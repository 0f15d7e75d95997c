package compositor

import (
	"strconv"
	"strings"

	"termface/internal/app/clock"
)

// Console templates shown verbatim
const (
	TimeCommand = "root@watch:~$ date +%T"
	DateCommand = "root@watch:~$ date +%x"

	// BinaryReference sizes and centers the binary rows
	BinaryReference = "000000"

	binaryWidth = len(BinaryReference)
)

// TwoDigit zero-pads v to two digits; defined for v in [0, 99]
func TwoDigit(v int) string {
	if v >= 10 {
		return strconv.Itoa(v)
	}

	return "0" + strconv.Itoa(v)
}

// SixBits renders v in base 2 left-padded with '0' to six characters
func SixBits(v int) string {
	s := strconv.FormatInt(int64(v), 2)
	if missing := binaryWidth - len(s); missing > 0 {
		s = strings.Repeat("0", missing) + s
	}

	return s
}

// ConsoleLines returns the four console lines for the calendar's time
func ConsoleLines(cal *clock.Calendar) [4]string {
	return [4]string{
		TimeCommand,
		TwoDigit(cal.Hour) + ":" + TwoDigit(cal.Minute) + ":" + TwoDigit(cal.Second),
		DateCommand,
		TwoDigit(cal.Day) + "/" + TwoDigit(cal.Month) + "/" + strconv.Itoa(cal.Year),
	}
}

// BinaryRows returns hour, minute and second as six-bit strings
func BinaryRows(cal *clock.Calendar) [3]string {
	return [3]string{
		SixBits(cal.Hour),
		SixBits(cal.Minute),
		SixBits(cal.Second),
	}
}
