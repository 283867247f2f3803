package create_booking

import "errors"

var (
	// ErrPackageNotFound возвращается, когда пакет не найден или снят с публикации
	ErrPackageNotFound = errors.New("create_booking: package not found")

	// ErrSlotTaken возвращается при конфликте с существующим бронированием
	ErrSlotTaken = errors.New("create_booking: slot already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrStartInPast возвращается при попытке забронировать прошедшее время
	ErrStartInPast = errors.New("create_booking: start time is in the past")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
