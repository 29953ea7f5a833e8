package sync_all_calendars

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/m04kA/BRB-SchedulingService/internal/domain"
	"github.com/m04kA/BRB-SchedulingService/internal/usecase/sync_calendar"
)

// UseCase синхронизация календарей всех подключенных мастеров.
// Мастера обрабатываются параллельно и независимо: падение одного
// не влияет на остальных.
type UseCase struct {
	credentials CredentialRepository
	syncer      StaffSyncer
	log         Logger
}

// New создает новый экземпляр UseCase
func New(credentials CredentialRepository, syncer StaffSyncer, log Logger) *UseCase {
	return &UseCase{
		credentials: credentials,
		syncer:      syncer,
		log:         log,
	}
}

// Execute запускает синхронизацию по каждому мастеру с сохраненными
// учетными данными и суммирует результаты
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	staffIDs, err := uc.credentials.ListStaffIDs(ctx, domain.ProviderGoogle)
	if err != nil {
		return nil, fmt.Errorf("%w: Execute - list staff: %v", ErrInternal, err)
	}

	resp := &Response{StaffProcessed: len(staffIDs)}
	if len(staffIDs) == 0 {
		return resp, nil
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, staffID := range staffIDs {
		wg.Add(1)
		go func(staffID int64) {
			defer wg.Done()

			result, err := uc.syncer.Execute(ctx, sync_calendar.Request{StaffID: staffID})
			mu.Lock()
			defer mu.Unlock()

			switch {
			case errors.Is(err, sync_calendar.ErrNotConnected):
				// учетные данные удалили между выборкой списка и запуском
				uc.log.Warn("Staff disappeared during sync-all: staffID=%d", staffID)
			case err != nil:
				uc.log.Error("Sync failed for staff: staffID=%d: %v", staffID, err)
				resp.Errors++
			default:
				resp.Synced += result.Synced
				resp.Errors += result.Errors
				resp.Total += result.Total
			}
		}(staffID)
	}
	wg.Wait()

	uc.log.Info(
		"Sync-all finished: staffProcessed=%d total=%d synced=%d errors=%d",
		resp.StaffProcessed, resp.Total, resp.Synced, resp.Errors,
	)
	return resp, nil
}
