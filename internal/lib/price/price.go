// Package price разбирает отображаемые строки цены витрины ("₽130", "₽1,200").
package price

import (
	"regexp"
	"strconv"
	"strings"
)

var digits = regexp.MustCompile(`\d+`)

// Parse извлекает целую сумму из отображаемой строки цены.
// Разделители тысяч (запятые и пробелы) отбрасываются,
// строка без числа даёт 0.
func Parse(display string) int {
	cleaned := strings.NewReplacer(",", "", " ", "", " ", "").Replace(display)
	match := digits.FindString(cleaned)
	if match == "" {
		return 0
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return n
}
