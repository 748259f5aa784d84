package build_grid

import (
	"time"

	"github.com/m04kA/ClubCourt-ScheduleService/internal/domain"
)

// isoWeekRange возвращает понедельник и воскресенье недели, в которую
// попадает now (ISO-конвенция: неделя начинается с понедельника)
func isoWeekRange(now time.Time) (time.Time, time.Time) {
	// time.Weekday: Sunday=0 ... Saturday=6; для ISO воскресенье — седьмой день
	offset := int(now.Weekday())
	if offset == 0 {
		offset = 7
	}
	offset--

	monday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -offset)
	sunday := monday.AddDate(0, 0, 6)

	return monday, sunday
}

// buildRows строит сетку: по строке на каждый корт ростера в его порядке,
// 16 часовых слотов на строку
//
// Занятые слоты заполняются из подходящих занятий; занятие, чье имя корта
// не совпадает ни с одним кортом ростера (корт деактивировали после создания
// занятия), молча пропускается. Проверка коллизий здесь не выполняется:
// при нарушении инварианта выше по потоку позднее занятие просто
// перезаписывает слот
func buildRows(roster []*domain.Court, schedules []*domain.ScheduleDetails, includeDate bool) []domain.CourtRow {
	rows := make([]domain.CourtRow, len(roster))
	index := make(map[string]int, len(roster))

	for i, c := range roster {
		rows[i] = domain.CourtRow{CourtName: c.Name}
		index[c.Name] = i
	}

	for _, s := range schedules {
		rowIdx, ok := index[s.CourtName]
		if !ok {
			continue
		}

		startHour, err := s.StartTime.Hour()
		if err != nil {
			continue
		}
		endHour, err := s.EndTime.Hour()
		if err != nil {
			continue
		}

		summary := &domain.SlotSummary{
			ProgramName: s.ProgramName,
			AgeLabel:    domain.AgeBracketLabel(s.AgeMin, s.AgeMax),
			Time:        s.StartTime.String(),
			EndTime:     s.EndTime.String(),
		}
		if s.TrainerName != nil {
			summary.Trainer = *s.TrainerName
		}
		if includeDate {
			summary.Date = s.Date.Format(domain.DateFormat)
		}

		// Занятие занимает слоты [startSlot, endSlot): конец эксклюзивен,
		// многочасовое занятие повторяет одинаковый summary в каждом слоте.
		// Часы вне сетки отсекаются
		startSlot := domain.SlotIndex(startHour)
		endSlot := domain.SlotIndex(endHour)

		for i := startSlot; i < endSlot; i++ {
			if i < 0 || i >= domain.GridSlots {
				continue
			}
			rows[rowIdx].Slots[i] = summary
		}
	}

	return rows
}
