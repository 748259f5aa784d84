package domain

import "github.com/m04kA/ClubCourt-ScheduleService/pkg/types"

// IntervalsConflict проверяет конфликт интервала-кандидата с существующим
// занятием по трём условиям с ЗАКРЫТЫМИ границами:
//
//	(a) начало кандидата попадает в [existStart, existEnd];
//	(b) конец кандидата попадает в [existStart, existEnd];
//	(c) кандидат полностью накрывает существующий интервал.
//
// Закрытые границы сознательно строже полуоткрытого [start, end):
// занятия "встык" (одно кончается ровно там, где начинается другое)
// тоже считаются конфликтом. Ослаблять проверку нельзя без ревизии
// клиентов, которые полагаются на этот запрет.
func IntervalsConflict(candStart, candEnd, existStart, existEnd types.TimeString) bool {
	// (a) existStart <= candStart <= existEnd
	if !candStart.IsBefore(existStart) && !candStart.IsAfter(existEnd) {
		return true
	}

	// (b) existStart <= candEnd <= existEnd
	if !candEnd.IsBefore(existStart) && !candEnd.IsAfter(existEnd) {
		return true
	}

	// (c) candStart <= existStart && candEnd >= existEnd
	if !candStart.IsAfter(existStart) && !candEnd.IsBefore(existEnd) {
		return true
	}

	return false
}

// FindConflict возвращает первое активное занятие из списка, конфликтующее
// с интервалом кандидата; excludeID исключает саму обновляемую строку
// из множества кандидатов. Возвращает nil, если конфликтов нет.
func FindConflict(candStart, candEnd types.TimeString, existing []*ScheduleDetails, excludeID int64) *ScheduleDetails {
	for _, row := range existing {
		if row.ID == excludeID {
			continue
		}
		if !row.IsActive {
			continue
		}
		if IntervalsConflict(candStart, candEnd, row.StartTime, row.EndTime) {
			return row
		}
	}
	return nil
}
