package schedule

import "errors"

var (
	// ErrRuleNotFound возвращается, когда правило рабочих часов не найдено
	ErrRuleNotFound = errors.New("schedule.repository: availability rule not found")

	// ErrRecurringBlockNotFound возвращается, когда еженедельная блокировка не найдена
	ErrRecurringBlockNotFound = errors.New("schedule.repository: recurring block not found")

	// ErrTimeBlockNotFound возвращается, когда разовая блокировка не найдена
	ErrTimeBlockNotFound = errors.New("schedule.repository: time block not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
