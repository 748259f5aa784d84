package get_schedule_grid

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/ClubCourt-ScheduleService/internal/domain"
	"github.com/m04kA/ClubCourt-ScheduleService/internal/usecase/build_grid"
)

// sentinelAll значение фильтра "все"; пустая строка эквивалентна
const sentinelAll = "All"

// SlotResponse занятый слот сетки
type SlotResponse struct {
	ProgramName string `json:"programName"`
	AgeLabel    string `json:"ageLabel"`
	Time        string `json:"time"`
	EndTime     string `json:"endTime"`
	Trainer     string `json:"trainer"`
	Date        string `json:"date,omitempty"`
}

// CourtRowResponse строка сетки: корт и его 16 часовых слотов
// null в Slots означает свободный час
type CourtRowResponse struct {
	CourtName string          `json:"courtName"`
	Slots     []*SlotResponse `json:"slots"`
}

// GridResponse недельная (или однодневная по pickDate) сетка занятости
type GridResponse struct {
	StartDate string             `json:"startDate"`
	EndDate   string             `json:"endDate"`
	Rows      []CourtRowResponse `json:"rows"`
}

// ToUseCaseRequest собирает запрос usecase из query параметров
// ageBracketId, branchId и courtId опциональны — отсутствие, пустая строка
// и "All" означают "без фильтра"; pickDate опционален (YYYY-MM-DD)
func ToUseCaseRequest(query url.Values) (*build_grid.Request, error) {
	req := &build_grid.Request{}

	var err error
	if req.AgeBracketID, err = parseOptionalID(query.Get("ageBracketId"), "ageBracketId"); err != nil {
		return nil, err
	}
	if req.BranchID, err = parseOptionalID(query.Get("branchId"), "branchId"); err != nil {
		return nil, err
	}
	if req.CourtID, err = parseOptionalID(query.Get("courtId"), "courtId"); err != nil {
		return nil, err
	}

	if raw := query.Get("pickDate"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid pickDate: %v", err)
		}
		req.PickDate = &date
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP DTO
func FromUseCaseResponse(resp *build_grid.Response) *GridResponse {
	return &GridResponse{
		StartDate: resp.StartDate.Format(domain.DateFormat),
		EndDate:   resp.EndDate.Format(domain.DateFormat),
		Rows:      rowsToResponse(resp.Rows),
	}
}

func rowsToResponse(rows []domain.CourtRow) []CourtRowResponse {
	out := make([]CourtRowResponse, 0, len(rows))
	for _, row := range rows {
		dto := CourtRowResponse{
			CourtName: row.CourtName,
			Slots:     make([]*SlotResponse, domain.GridSlots),
		}
		for i, slot := range row.Slots {
			if slot == nil {
				continue
			}
			dto.Slots[i] = &SlotResponse{
				ProgramName: slot.ProgramName,
				AgeLabel:    slot.AgeLabel,
				Time:        slot.Time,
				EndTime:     slot.EndTime,
				Trainer:     slot.Trainer,
				Date:        slot.Date,
			}
		}
		out = append(out, dto)
	}
	return out
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
