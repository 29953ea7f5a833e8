package invitations

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/BRB-SchedulingService/internal/domain"
	credentialstore "github.com/m04kA/BRB-SchedulingService/internal/infra/storage/credential"
	invitationstore "github.com/m04kA/BRB-SchedulingService/internal/infra/storage/invitation"
)

// codeBytes длина случайной части кода приглашения, в hex получается 64 символа
const codeBytes = 32

// Service жизненный цикл приглашений на подключение календаря:
// выпуск одноразового кода, обмен authorization code на токены при
// возврате с OAuth-согласия, статус подключения и чистка просроченных кодов.
type Service struct {
	invitations  InvitationRepository
	credentials  CredentialRepository
	calendar     CalendarClient
	frontendURL  string
	ttl          time.Duration
	timeProvider TimeProvider
	log          Logger
}

// NewService создает новый экземпляр Service
func NewService(
	invitations InvitationRepository,
	credentials CredentialRepository,
	calendar CalendarClient,
	frontendURL string,
	ttlHours int,
	timeProvider TimeProvider,
	log Logger,
) *Service {
	if ttlHours <= 0 {
		ttlHours = domain.DefaultInvitationTTLHours
	}
	return &Service{
		invitations:  invitations,
		credentials:  credentials,
		calendar:     calendar,
		frontendURL:  frontendURL,
		ttl:          time.Duration(ttlHours) * time.Hour,
		timeProvider: timeProvider,
		log:          log,
	}
}

// Issue выпускает новое приглашение для мастера.
// Код одноразовый, живет ограниченное время, state OAuth-запроса равен коду:
// callback по state находит приглашение и мастера.
func (s *Service) Issue(ctx context.Context, staffID int64, staffEmail string) (*IssueResult, error) {
	if staffID <= 0 {
		return nil, fmt.Errorf("%w: staffId must be positive", ErrInvalidInput)
	}

	code, err := generateCode()
	if err != nil {
		return nil, fmt.Errorf("%w: Issue - generate code: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	inv, err := s.invitations.Create(ctx, &domain.Invitation{
		StaffID:    staffID,
		StaffEmail: staffEmail,
		Code:       code,
		CreatedAt:  now,
		ExpiresAt:  now.Add(s.ttl),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: Issue - create invitation: %v", ErrInternal, err)
	}

	s.log.Info("Calendar invitation issued: staffID=%d expiresAt=%s", staffID, inv.ExpiresAt.Format(time.RFC3339))
	return &IssueResult{
		Invitation: inv,
		Link:       fmt.Sprintf("%s/calendar/connect/%s", s.frontendURL, code),
		AuthURL:    s.calendar.AuthURL(code),
	}, nil
}

// Redeem обменивает authorization code на токены по коду приглашения.
// Приглашение проверяется на срок и одноразовость, токены сохраняются
// upsert-ом: повторное подключение мастера перезаписывает старые.
func (s *Service) Redeem(ctx context.Context, invitationCode, authCode string) (*domain.CalendarCredential, error) {
	if invitationCode == "" || authCode == "" {
		return nil, fmt.Errorf("%w: invitation code and authorization code are required", ErrInvalidInput)
	}

	inv, err := s.invitations.GetByCode(ctx, invitationCode)
	if err != nil {
		if errors.Is(err, invitationstore.ErrInvitationNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, fmt.Errorf("%w: Redeem - get invitation: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	if inv.Used {
		return nil, ErrInvitationUsed
	}
	if inv.IsExpired(now) {
		return nil, ErrInvitationExpired
	}

	tok, err := s.calendar.ExchangeCode(ctx, authCode)
	if err != nil {
		return nil, fmt.Errorf("%w: staffID=%d: %v", ErrTokenExchange, inv.StaffID, err)
	}

	cred := &domain.CalendarCredential{
		StaffID:      inv.StaffID,
		Provider:     domain.ProviderGoogle,
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenType:    tok.TokenType,
		Scope:        tok.Scope,
		ExpiresAt:    tok.ExpiresAt,
	}
	if err := s.credentials.Upsert(ctx, cred); err != nil {
		return nil, fmt.Errorf("%w: Redeem - upsert credential: %v", ErrInternal, err)
	}
	if err := s.invitations.MarkUsed(ctx, invitationCode, now); err != nil {
		// токены уже сохранены, подключение состоялось
		s.log.Error("Failed to mark invitation used: staffID=%d: %v", inv.StaffID, err)
	}

	s.log.Info("Calendar connected: staffID=%d provider=%s", inv.StaffID, domain.ProviderGoogle)
	return cred, nil
}

// Status возвращает состояние подключения календаря мастера
func (s *Service) Status(ctx context.Context, staffID int64) (*StatusResult, error) {
	if staffID <= 0 {
		return nil, fmt.Errorf("%w: staffId must be positive", ErrInvalidInput)
	}

	cred, err := s.credentials.GetByStaff(ctx, staffID, domain.ProviderGoogle)
	if err != nil {
		if errors.Is(err, credentialstore.ErrCredentialNotFound) {
			return &StatusResult{}, nil
		}
		return nil, fmt.Errorf("%w: Status - get credential: %v", ErrInternal, err)
	}

	return &StatusResult{
		Connected:       true,
		Expired:         cred.IsExpired(s.timeProvider.Now()),
		HasRefreshToken: cred.CanRefresh(),
		ExpiresAt:       cred.ExpiresAt,
	}, nil
}

// PurgeExpired удаляет просроченные неиспользованные приглашения,
// возвращает количество удаленных
func (s *Service) PurgeExpired(ctx context.Context) (int64, error) {
	deleted, err := s.invitations.DeleteExpiredUnused(ctx, s.timeProvider.Now())
	if err != nil {
		return 0, fmt.Errorf("%w: PurgeExpired: %v", ErrInternal, err)
	}
	if deleted > 0 {
		s.log.Info("Purged expired invitations: count=%d", deleted)
	}
	return deleted, nil
}

func generateCode() (string, error) {
	buf := make([]byte, codeBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
