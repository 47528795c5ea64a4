package exporter

import (
	"fmt"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var englishPrinter = message.NewPrinter(language.English)

// Currency formats a dollar amount with thousands separators and the given
// number of decimal places, e.g. Currency(6503.27, 0) == "$6,503".
func Currency(value float64, decimals int) string {
	return englishPrinter.Sprintf("$%."+strconv.Itoa(decimals)+"f", value)
}

// Percent formats a ratio already scaled to 0-100 with one decimal place.
func Percent(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}
