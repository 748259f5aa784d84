package domain

import "fmt"

// SlotSummary содержимое одного занятого слота сетки
// Занятие, длящееся несколько часов, повторяет одинаковый summary
// в каждом из своих слотов
type SlotSummary struct {
	ProgramName string
	AgeLabel    string // "{min}-{max} Years" или пустая строка
	Time        string // Время начала занятия "HH:MM"
	EndTime     string // Время конца занятия "HH:MM"
	Trainer     string // Имя тренера или пустая строка

	// Date дата занятия "YYYY-MM-DD"; заполняется только в однодневном
	// мобильном варианте сетки, где один ответ может покрывать несколько дней
	Date string
}

// CourtRow строка сетки: один корт и его 16 часовых слотов
// nil-слот означает свободный час
type CourtRow struct {
	CourtName string
	Slots     [GridSlots]*SlotSummary
}

// Grid сетка занятости: по одной строке на каждый активный корт,
// в порядке сортировки ростера (по имени)
type Grid struct {
	Rows []CourtRow
}

// AgeBracketLabel renders the display label for an age bracket
func AgeBracketLabel(ageMin, ageMax *int) string {
	if ageMin == nil || ageMax == nil {
		return ""
	}
	return fmt.Sprintf("%d-%d Years", *ageMin, *ageMax)
}

// SlotIndex переводит час в индекс слота сетки
// Возвращает отрицательное значение или >= GridSlots для часов вне сетки
func SlotIndex(hour int) int {
	return hour - GridStartHour
}
