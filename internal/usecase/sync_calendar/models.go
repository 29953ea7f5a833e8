package sync_calendar

// Request модель запроса синхронизации одного мастера
type Request struct {
	StaffID int64 // ID мастера
}

// Response итог одного прогона синхронизации
type Response struct {
	Synced  int // создано внешних событий
	Errors  int // записей завершилось ошибкой (error-связь сохранена)
	Skipped int // записей уже было синхронизировано
	Total   int // всего записей в горизонте выборки
}
