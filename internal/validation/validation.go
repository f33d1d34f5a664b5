package validation

import (
	"errors"
	"fmt"
	"strconv"
	"twitterclone/internal/models"
	"unicode/utf8"
)

// Rule - декларативное описание проверок одного поля.
// Проверки поля идут по порядку и останавливаются на первой ошибке,
// но все поля схемы проверяются до формирования ответа.
type Rule struct {
	Required bool
	Numeric  bool
	MinLen   int
	MaxLen   int
	In       []string
	Custom   func(value string) error
}

type Schema map[string]Rule

func checkRule(field, value string, rule Rule) error {
	if value == "" {
		if rule.Required {
			return fmt.Errorf("%s обязательно", field)
		}
		return nil
	}

	if rule.Numeric {
		if _, err := strconv.Atoi(value); err != nil {
			return fmt.Errorf("%s должно быть числом", field)
		}
	}

	if rule.MinLen > 0 && utf8.RuneCountInString(value) < rule.MinLen {
		return fmt.Errorf("%s должно быть не короче %d символов", field, rule.MinLen)
	}

	if rule.MaxLen > 0 && utf8.RuneCountInString(value) > rule.MaxLen {
		return fmt.Errorf("%s должно быть не длиннее %d символов", field, rule.MaxLen)
	}

	if len(rule.In) > 0 {
		found := false
		for _, allowed := range rule.In {
			if value == allowed {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("недопустимое значение %s", field)
		}
	}

	if rule.Custom != nil {
		return rule.Custom(value)
	}

	return nil
}

// Validate - агрегатная проверка: собирает ошибки всех полей в 422,
// но ошибка с явным статусом прерывает агрегат и всплывает как есть
func Validate(values map[string]string, schema Schema) error {
	fieldErrors := make(map[string]string)

	for field, rule := range schema {
		err := checkRule(field, values[field], rule)
		if err == nil {
			continue
		}

		var statusErr *models.ErrorWithStatus
		if errors.As(err, &statusErr) {
			return statusErr
		}

		fieldErrors[field] = err.Error()
	}

	if len(fieldErrors) > 0 {
		return models.NewEntityError(fieldErrors)
	}

	return nil
}
