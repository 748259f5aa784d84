package get_schedules

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/ClubCourt-ScheduleService/internal/domain"
	"github.com/m04kA/ClubCourt-ScheduleService/internal/service/schedules/models"
)

// sentinelAll значение фильтра "все"; пустая строка эквивалентна
const sentinelAll = "All"

// ToServiceRequest собирает запрос сервиса из query параметров
// startDate и endDate обязательны; branchId, courtId и ageBracketId
// опциональны — отсутствие, пустая строка и "All" означают "без фильтра"
func ToServiceRequest(query url.Values) (*models.ListSchedulesRequest, error) {
	startDate, err := parseRequiredDate(query.Get("startDate"), "startDate")
	if err != nil {
		return nil, err
	}

	endDate, err := parseRequiredDate(query.Get("endDate"), "endDate")
	if err != nil {
		return nil, err
	}

	req := &models.ListSchedulesRequest{
		StartDate: startDate,
		EndDate:   endDate,
	}

	if req.BranchID, err = parseOptionalID(query.Get("branchId"), "branchId"); err != nil {
		return nil, err
	}
	if req.CourtID, err = parseOptionalID(query.Get("courtId"), "courtId"); err != nil {
		return nil, err
	}
	if req.AgeBracketID, err = parseOptionalID(query.Get("ageBracketId"), "ageBracketId"); err != nil {
		return nil, err
	}

	req.IncludeInactive = query.Get("includeInactive") == "true"

	return req, nil
}

func parseRequiredDate(value, name string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%s is required", name)
	}
	date, err := time.Parse(domain.DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s: %v", name, err)
	}
	return date, nil
}

func parseOptionalID(value, name string) (*int64, error) {
	if value == "" || value == sentinelAll {
		return nil, nil
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("invalid %s: %q", name, value)
	}
	return &id, nil
}
