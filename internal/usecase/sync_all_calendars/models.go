package sync_all_calendars

// Response сводный итог синхронизации всех подключенных мастеров
type Response struct {
	Synced         int // создано внешних событий суммарно
	Errors         int // ошибок суммарно (включая мастеров, упавших целиком)
	Total          int // записей в горизонте суммарно
	StaffProcessed int // мастеров с сохраненными учетными данными
}
