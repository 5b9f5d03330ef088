package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var indonesianDays = [...]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatCurrency renders an amount as Indonesian Rupiah without decimals,
// e.g. 55000 -> "Rp 55.000".
func FormatCurrency(value float64) string {
	negative := value < 0
	amount := int64(math.Round(math.Abs(value)))

	digits := strconv.FormatInt(amount, 10)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	formatted := "Rp " + strings.Join(groups, ".")
	if negative {
		formatted = "-" + formatted
	}
	return formatted
}

// FormatDateTime renders a timestamp the way the café displays it, e.g.
// "Senin, 5 Januari 2026 14.30".
func FormatDateTime(t time.Time) string {
	return fmt.Sprintf("%s, %d %s %d %02d.%02d",
		indonesianDays[int(t.Weekday())],
		t.Day(),
		indonesianMonths[int(t.Month())-1],
		t.Year(),
		t.Hour(),
		t.Minute(),
	)
}
