package sync_calendar

import (
	"fmt"
	"strings"

	"github.com/m04kA/BRB-SchedulingService/internal/domain"
	"github.com/m04kA/BRB-SchedulingService/internal/integrations/googlecalendar"
)

// buildEventInput собирает данные внешнего события из денормализованной записи.
// Временные метки - локальные литералы без зоны, зона передается отдельным полем.
func buildEventInput(view *domain.BookingView, timeZone string) *googlecalendar.EventInput {
	return &googlecalendar.EventInput{
		Summary:     buildSummary(view),
		Description: buildDescription(view),
		StartLocal:  view.StartAt.String(),
		EndLocal:    view.EndAt().String(),
		TimeZone:    timeZone,
	}
}

// buildSummary возвращает заголовок события: "{клиент} - {услуги через запятую}"
func buildSummary(view *domain.BookingView) string {
	name := view.ClientName
	if name == "" {
		name = "Client"
	}
	return fmt.Sprintf("%s - %s", name, strings.Join(view.ServiceNames(), ", "))
}

// buildDescription возвращает описание события: непустые строки, склеенные переводом строки
func buildDescription(view *domain.BookingView) string {
	lines := make([]string, 0, 4)

	if view.ClientName != "" {
		lines = append(lines, "Client: "+view.ClientName)
	}
	if view.ClientPhone != nil && *view.ClientPhone != "" {
		lines = append(lines, "Phone: "+*view.ClientPhone)
	}
	if names := view.ServiceNames(); len(names) > 0 {
		lines = append(lines, "Services: "+strings.Join(names, ", "))
	}
	if view.Notes != nil && *view.Notes != "" {
		lines = append(lines, "Notes: "+*view.Notes)
	}

	return strings.Join(lines, "\n")
}
