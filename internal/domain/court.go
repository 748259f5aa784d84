package domain

import "time"

// Court represents a physical court within a branch
// Only active courts participate in conflict checks and grid rendering;
// an inactive court is dropped from the roster entirely
type Court struct {
	ID       int64
	BranchID int64
	Name     string
	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Branch справочник филиала клуба
type Branch struct {
	ID   int64
	Name string
}

// Program справочник программы (вида занятий)
type Program struct {
	ID   int64
	Name string
}

// Trainer справочник тренера
type Trainer struct {
	ID   int64
	Name string
}

// AgeBracket справочник возрастной группы
type AgeBracket struct {
	ID     int64
	AgeMin int
	AgeMax int
}
