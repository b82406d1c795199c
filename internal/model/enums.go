package model

import (
	"fmt"
	"strings"
)

// Priority is a closed enumeration of task priority levels.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority converts a string to a Priority. Unrecognized values are
// rejected, never coerced.
func ParsePriority(s string) (Priority, error) {
	switch Priority(strings.ToLower(strings.TrimSpace(s))) {
	case PriorityLow:
		return PriorityLow, nil
	case PriorityMedium:
		return PriorityMedium, nil
	case PriorityHigh:
		return PriorityHigh, nil
	}
	return "", fmt.Errorf("unknown priority %q", s)
}

// Urgency returns a numeric key for sorting, higher = more urgent.
func (p Priority) Urgency() int {
	switch p {
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 1
	default:
		return 0
	}
}

// Status is a closed enumeration of task states.
type Status string

const (
	StatusOpen Status = "open"
	StatusDone Status = "done"
)

// ParseStatus converts a string to a Status.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusOpen:
		return StatusOpen, nil
	case StatusDone:
		return StatusDone, nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// Recurrence is a closed enumeration of repeat periods. A recurring task
// spawns a fresh copy of itself when completed.
type Recurrence string

const (
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
	RecurrenceYearly  Recurrence = "yearly"
)

// ParseRecurrence converts a string to a Recurrence.
func ParseRecurrence(s string) (Recurrence, error) {
	switch Recurrence(strings.ToLower(strings.TrimSpace(s))) {
	case RecurrenceDaily:
		return RecurrenceDaily, nil
	case RecurrenceWeekly:
		return RecurrenceWeekly, nil
	case RecurrenceMonthly:
		return RecurrenceMonthly, nil
	case RecurrenceYearly:
		return RecurrenceYearly, nil
	}
	return "", fmt.Errorf("unknown recurrence %q", s)
}
