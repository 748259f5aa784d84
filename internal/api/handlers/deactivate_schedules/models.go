package deactivate_schedules

// DeactivateSchedulesRequest тело запроса пакетной деактивации
type DeactivateSchedulesRequest struct {
	IDs []int64 `json:"ids"`
}
