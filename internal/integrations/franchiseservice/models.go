package franchiseservice

import "github.com/m04kA/RBM-DashboardService/pkg/types"

// Franchise модель франшизы из FranchiseService
type Franchise struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	City     string     `json:"city"`
	Address  string     `json:"address"`
	Tables   int        `json:"tables"` // Количество столиков, доступных для бронирования
	Schedule []Schedule `json:"schedule"`
	IsActive bool       `json:"is_active"`
}

// Schedule расписание работы франшизы на день недели
type Schedule struct {
	DayOfWeek int              `json:"day_of_week"` // 0 = воскресенье ... 6 = суббота
	IsClosed  bool             `json:"is_closed"`
	OpenTime  types.TimeString `json:"open_time"`
	CloseTime types.TimeString `json:"close_time"`
}

// ScheduleFor возвращает расписание на указанный день недели
func (f *Franchise) ScheduleFor(dayOfWeek int) (Schedule, bool) {
	for _, s := range f.Schedule {
		if s.DayOfWeek == dayOfWeek {
			return s, true
		}
	}
	return Schedule{}, false
}

// ErrorResponse модель ошибки от FranchiseService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
