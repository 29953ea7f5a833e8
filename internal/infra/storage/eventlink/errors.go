package eventlink

import "errors"

var (
	// ErrLinkNotFound возвращается, когда связь записи с событием не найдена
	ErrLinkNotFound = errors.New("eventlink.repository: link not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("eventlink.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("eventlink.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("eventlink.repository: failed to scan row")
)
