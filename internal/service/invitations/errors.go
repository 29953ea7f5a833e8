package invitations

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("service/invitations: invalid input data")

	// ErrInvitationNotFound возвращается, когда приглашение не найдено
	ErrInvitationNotFound = errors.New("service/invitations: invitation not found")

	// ErrInvitationExpired возвращается при попытке использовать просроченное приглашение
	ErrInvitationExpired = errors.New("service/invitations: invitation expired")

	// ErrInvitationUsed возвращается при повторном использовании приглашения
	ErrInvitationUsed = errors.New("service/invitations: invitation already used")

	// ErrTokenExchange возвращается при ошибке обмена authorization code на токены
	ErrTokenExchange = errors.New("service/invitations: failed to exchange authorization code")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service/invitations: internal error")
)
