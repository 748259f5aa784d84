package domain

// Параметры фиксированной часовой сетки
// Сетка покрывает часы 07:00–22:00: 16 слотов по одному часу,
// индекс слота = час − GridStartHour
const (
	GridStartHour = 7
	GridSlots     = 16
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
