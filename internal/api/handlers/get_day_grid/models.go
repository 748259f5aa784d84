package get_day_grid

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/m04kA/ClubCourt-ScheduleService/internal/domain"
	"github.com/m04kA/ClubCourt-ScheduleService/internal/usecase/build_day_grid"
)

// SlotResponse занятый слот однодневной сетки
// В отличие от недельной сетки дата занятия заполняется всегда
type SlotResponse struct {
	ProgramName string `json:"programName"`
	AgeLabel    string `json:"ageLabel"`
	Time        string `json:"time"`
	EndTime     string `json:"endTime"`
	Trainer     string `json:"trainer"`
	Date        string `json:"date"`
}

// CourtRowResponse строка сетки: корт и его 16 часовых слотов
type CourtRowResponse struct {
	CourtName string          `json:"courtName"`
	Slots     []*SlotResponse `json:"slots"`
}

// DayGridResponse однодневная сетка для мобильного клиента
type DayGridResponse struct {
	Date string             `json:"date"`
	Rows []CourtRowResponse `json:"rows"`
}

// ToUseCaseRequest собирает запрос usecase из query параметров
// ageBracketId, courtId и date обязательны; branchId опционален
// Дата валидируется строго в usecase (YYYY-MM-DD), здесь передаётся строкой
func ToUseCaseRequest(query url.Values) (*build_day_grid.Request, error) {
	ageBracketID, err := parseRequiredID(query.Get("ageBracketId"), "ageBracketId")
	if err != nil {
		return nil, err
	}

	courtID, err := parseRequiredID(query.Get("courtId"), "courtId")
	if err != nil {
		return nil, err
	}

	req := &build_day_grid.Request{
		AgeBracketID: ageBracketID,
		CourtID:      courtID,
		Date:         query.Get("date"),
	}

	if raw := query.Get("branchId"); raw != "" {
		branchID, err := parseRequiredID(raw, "branchId")
		if err != nil {
			return nil, err
		}
		req.BranchID = &branchID
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP DTO
func FromUseCaseResponse(resp *build_day_grid.Response) *DayGridResponse {
	out := &DayGridResponse{
		Date: resp.Date.Format(domain.DateFormat),
		Rows: make([]CourtRowResponse, 0, len(resp.Rows)),
	}

	for _, row := range resp.Rows {
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
		out.Rows = append(out.Rows, dto)
	}

	return out
}

func parseRequiredID(value, name string) (int64, error) {
	if value == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", name, value)
	}
	return id, nil
}
