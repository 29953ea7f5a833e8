package invitation

import "errors"

var (
	// ErrInvitationNotFound возвращается, когда приглашение не найдено
	ErrInvitationNotFound = errors.New("invitation.repository: invitation not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("invitation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("invitation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("invitation.repository: failed to scan row")
)
