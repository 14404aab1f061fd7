package services

import (
	"fmt"
	"time"

	"todo-list/internal/models"
)

// FilterKind discriminates the three filter families.
type FilterKind int

const (
	FilterByCategory FilterKind = iota
	FilterByStatus
	FilterByPeriod
)

// StatusOption selects tasks by their completed flag.
type StatusOption string

const (
	StatusDone   StatusOption = "Done"
	StatusUndone StatusOption = "Undone"
)

func (s StatusOption) Valid() bool {
	return s == StatusDone || s == StatusUndone
}

// Period selects undone tasks due within a fixed window from now.
type Period string

const (
	PeriodToday      Period = "Today"
	PeriodMonth      Period = "Month"
	PeriodThreeMonth Period = "3 Month"
	PeriodSixMonth   Period = "6 Month"
	PeriodYear       Period = "Year"
)

// Window returns the period's lookahead duration. ok is false for a value
// outside the enumeration.
func (p Period) Window() (time.Duration, bool) {
	const day = 24 * time.Hour
	switch p {
	case PeriodToday:
		return 1 * day, true
	case PeriodMonth:
		return 30 * day, true
	case PeriodThreeMonth:
		return 91 * day, true
	case PeriodSixMonth:
		return 182 * day, true
	case PeriodYear:
		return 365 * day, true
	}
	return 0, false
}

// FilterSpec is a discriminated filter request. Exactly one of Category,
// Status, or Period is meaningful, selected by Kind.
type FilterSpec struct {
	Kind     FilterKind
	Category models.Category
	Status   StatusOption
	Period   Period
}

// FilterTasks returns the subset of tasks matching spec, preserving the input
// order. It never touches storage; callers pass the owner's task list. A value
// outside its enumeration yields ErrInvalidOption.
//
// The period filter matches undone tasks due at or before now+window. The
// window is a lookahead from the evaluation time, so tasks that are already
// overdue also match.
func FilterTasks(tasks []models.Task, spec FilterSpec, now time.Time) ([]models.Task, error) {
	matched := make([]models.Task, 0, len(tasks))

	switch spec.Kind {
	case FilterByCategory:
		if !spec.Category.Valid() {
			return nil, fmt.Errorf("%w: category %q", ErrInvalidOption, spec.Category)
		}
		for _, t := range tasks {
			if t.Category == spec.Category && !t.Completed {
				matched = append(matched, t)
			}
		}

	case FilterByStatus:
		if !spec.Status.Valid() {
			return nil, fmt.Errorf("%w: status %q", ErrInvalidOption, spec.Status)
		}
		wantDone := spec.Status == StatusDone
		for _, t := range tasks {
			if t.Completed == wantDone {
				matched = append(matched, t)
			}
		}

	case FilterByPeriod:
		window, ok := spec.Period.Window()
		if !ok {
			return nil, fmt.Errorf("%w: period %q", ErrInvalidOption, spec.Period)
		}
		limit := now.Add(window)
		for _, t := range tasks {
			if !t.Completed && !t.DueAt.After(limit) {
				matched = append(matched, t)
			}
		}

	default:
		return nil, fmt.Errorf("%w: unknown filter kind %d", ErrInvalidOption, spec.Kind)
	}

	return matched, nil
}
