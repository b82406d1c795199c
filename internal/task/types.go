package task

import "taskkeep/internal/model"

// --- UseCase Inputs ---

// CreateInput holds the fields for a new task. Empty optional fields mean
// "absent": priority defaults to medium, due and recurrence stay unset.
type CreateInput struct {
	Title      string
	Notes      string
	Tags       []string
	Priority   string // low | medium | high, "" = medium
	Due        string // YYYY-MM-DD, "" = none
	Recurrence string // daily | weekly | monthly | yearly, "" = none
}

// TagMode selects how EditInput.Tags is applied. Exactly one mode per call.
type TagMode string

const (
	TagModeSet    TagMode = "set"    // replace the full tag set
	TagModeAdd    TagMode = "add"    // union
	TagModeRemove TagMode = "remove" // difference
)

// EditInput is a sparse field patch: nil pointers leave the field as-is.
// For Due and Recurrence an empty string clears the field.
type EditInput struct {
	ID         int64
	Title      *string
	Notes      *string
	Priority   *string
	Due        *string
	Recurrence *string
	TagMode    TagMode // "" = tags untouched
	Tags       []string
}

// FilterInput names the composable filter predicates (logical AND).
type FilterInput struct {
	Status      string // open | done
	Priority    string // low | medium | high
	Tag         string // task must carry this tag
	Overdue     bool   // due strictly before today AND open
	DueToday    bool   // due equals today
	DueThisWeek bool   // due within the next 7 days inclusive
}

// ListInput combines filters, full-text search and one sort key.
type ListInput struct {
	Filter FilterInput
	Search string // case-insensitive substring over title, notes, tags
	Sort   string // due | priority | title | created | updated, "" = collection order
}

// BulkAction is the operation applied to every task matched by a bulk filter.
type BulkAction string

const (
	BulkActionDelete      BulkAction = "delete"
	BulkActionTagAdd      BulkAction = "tag-add"
	BulkActionTagRemove   BulkAction = "tag-remove"
	BulkActionSetPriority BulkAction = "set-priority"
)

// BulkInput selects a target set via Filter and applies one Action to it.
type BulkInput struct {
	Filter   FilterInput
	Action   BulkAction
	Tags     []string // for tag-add / tag-remove
	Priority string   // for set-priority
}

// ImportV1Input points at a legacy flat-format task file.
type ImportV1Input struct {
	Path string
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Task model.Task
}

type DetailOutput struct {
	Task model.Task
}

type EditOutput struct {
	Task model.Task
}

// DoneOutput carries the completed task and, when it recurs, the freshly
// spawned follow-up task.
type DoneOutput struct {
	Task    model.Task
	Spawned *model.Task
}

type ListOutput struct {
	Tasks []model.Task
	Total int
}

// BulkOutput reports how many tasks the action touched. When a bulk run
// aborts midway, CommittedIDs names the tasks already changed.
type BulkOutput struct {
	Affected     int
	CommittedIDs []int64
}

// TagCount is one row of the tag usage histogram.
type TagCount struct {
	Tag   string
	Count int
}

// StatsOutput is the aggregate snapshot, recomputed on every call.
type StatsOutput struct {
	Total          int
	Open           int
	Done           int
	CompletionRate float64 // done / total, 0 when total is 0
	OpenByPriority map[model.Priority]int
	Overdue        int
	DueToday       int
	DueThisWeek    int
	Recurring      int
	TagHistogram   []TagCount // descending by count, ties by tag name
}

type ImportV1Output struct {
	Imported int
	Tasks    []model.Task
}
