// Package period разбирает отображаемые строки периода подписки
// ("30 дней", "1 день", "Одноразовая покупка", "навсегда").
package period

import (
	"regexp"
	"strconv"
	"strings"
)

var digits = regexp.MustCompile(`\d+`)

// Days возвращает количество дней из строки периода.
// Берётся первое целое число в строке; если числа нет — 0.
func Days(period string) int {
	match := digits.FindString(period)
	if match == "" {
		return 0
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return n
}

// IsDayCount сообщает, задаёт ли период конечное число дней.
// Одноразовые и бессрочные покупки подписками не считаются.
func IsDayCount(period string) bool {
	if period == "" {
		return false
	}
	if strings.Contains(period, "Одноразовая") || strings.Contains(period, "навсегда") {
		return false
	}
	return strings.Contains(period, "день") || strings.Contains(period, "дней")
}
