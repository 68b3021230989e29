// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON‑ответов HTTP‑обработчиков. Тело любой ошибки — объект
// с единственным полем message, как его ожидает витрина.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

// Message описывает стандартное тело ответа с текстовым сообщением.
// Используется и для ошибок, и для подтверждений без данных.
type Message struct {
	Message string `json:"message" example:"Профиль обновлен"`
}

// Error возвращает тело ответа с переданным сообщением об ошибке.
func Error(msg string) Message {
	return Message{Message: msg}
}

// OK возвращает тело подтверждения с переданным сообщением.
func OK(msg string) Message {
	return Message{Message: msg}
}

// ValidationError формирует сообщение об ошибке на основе ошибок валидации.
// Каждое нарушение превращается в человеко‑читаемый текст, объединённый
// через запятую. Обработчики с фиксированными текстами витрины используют
// свои константы, эта функция — общий запасной вариант.
func ValidationError(errs validator.ValidationErrors) Message {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "email":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid email", err.Field()))
		case "min":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is too short", err.Field()))
		case "max":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is too long", err.Field()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return Message{Message: strings.Join(errsMsgs, ", ")}
}
