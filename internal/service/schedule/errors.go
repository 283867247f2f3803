package schedule

import "errors"

var (
	// ErrRuleNotFound возвращается, когда правило рабочих часов не найдено
	ErrRuleNotFound = errors.New("availability rule not found")

	// ErrRecurringBlockNotFound возвращается, когда еженедельная блокировка не найдена
	ErrRecurringBlockNotFound = errors.New("recurring block not found")

	// ErrTimeBlockNotFound возвращается, когда разовая блокировка не найдена
	ErrTimeBlockNotFound = errors.New("time block not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
