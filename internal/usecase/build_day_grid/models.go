package build_day_grid

import (
	"time"

	"github.com/m04kA/ClubCourt-ScheduleService/internal/domain"
)

// Request модель запроса однодневной сетки для мобильного клиента
// В отличие от недельной сетки возрастная группа, корт и дата ОБЯЗАТЕЛЬНЫ;
// дата передаётся строкой и должна быть строгим литералом YYYY-MM-DD
type Request struct {
	AgeBracketID int64
	CourtID      int64
	BranchID     *int64
	Date         string
}

// Response модель ответа с однодневной сеткой
// Каждый занятый слот дополнительно несёт дату занятия: мобильный клиент
// может отрисовывать несколько дней из нескольких вызовов одним списком
type Response struct {
	Date time.Time
	Rows []domain.CourtRow
}
