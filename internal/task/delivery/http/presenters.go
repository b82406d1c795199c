package http

import (
	"taskkeep/internal/model"
	"taskkeep/internal/task"
	"taskkeep/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title      string   `json:"title"      binding:"required"`
	Notes      string   `json:"notes"`
	Tags       []string `json:"tags"`
	Priority   string   `json:"priority"`
	Due        string   `json:"due"`
	Recurrence string   `json:"recurrence"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:      r.Title,
		Notes:      r.Notes,
		Tags:       r.Tags,
		Priority:   r.Priority,
		Due:        r.Due,
		Recurrence: r.Recurrence,
	}
}

// editReq is a sparse patch: absent fields stay untouched, empty-string
// due/recurrence clear the field.
type editReq struct {
	ID         int64    `json:"-"`
	Title      *string  `json:"title"`
	Notes      *string  `json:"notes"`
	Priority   *string  `json:"priority"`
	Due        *string  `json:"due"`
	Recurrence *string  `json:"recurrence"`
	TagMode    string   `json:"tag_mode"` // set | add | remove
	Tags       []string `json:"tags"`
}

func (r editReq) toInput() task.EditInput {
	return task.EditInput{
		ID:         r.ID,
		Title:      r.Title,
		Notes:      r.Notes,
		Priority:   r.Priority,
		Due:        r.Due,
		Recurrence: r.Recurrence,
		TagMode:    task.TagMode(r.TagMode),
		Tags:       r.Tags,
	}
}

type listReq struct {
	Status   string `form:"status"`
	Priority string `form:"priority"`
	Tag      string `form:"tag"`
	Overdue  bool   `form:"overdue"`
	Today    bool   `form:"today"`
	Week     bool   `form:"week"`
	Search   string `form:"q"`
	Sort     string `form:"sort"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{
		Filter: task.FilterInput{
			Status:      r.Status,
			Priority:    r.Priority,
			Tag:         r.Tag,
			Overdue:     r.Overdue,
			DueToday:    r.Today,
			DueThisWeek: r.Week,
		},
		Search: r.Search,
		Sort:   r.Sort,
	}
}

type bulkFilterReq struct {
	Status   string `json:"status"`
	Priority string `json:"priority"`
	Tag      string `json:"tag"`
	Overdue  bool   `json:"overdue"`
	Today    bool   `json:"today"`
	Week     bool   `json:"week"`
}

type bulkReq struct {
	Filter   bulkFilterReq `json:"filter"`
	Action   string        `json:"action" binding:"required"`
	Tags     []string      `json:"tags"`
	Priority string        `json:"priority"`
}

func (r bulkReq) toInput() task.BulkInput {
	return task.BulkInput{
		Filter: task.FilterInput{
			Status:      r.Filter.Status,
			Priority:    r.Filter.Priority,
			Tag:         r.Filter.Tag,
			Overdue:     r.Filter.Overdue,
			DueToday:    r.Filter.Today,
			DueThisWeek: r.Filter.Week,
		},
		Action:   task.BulkAction(r.Action),
		Tags:     r.Tags,
		Priority: r.Priority,
	}
}

type importReq struct {
	Path string `json:"path" binding:"required"`
}

// --- Response DTOs ---

type taskResp struct {
	ID          int64              `json:"id"`
	Title       string             `json:"title"`
	Notes       string             `json:"notes"`
	Tags        []string           `json:"tags"`
	Priority    string             `json:"priority"`
	Status      string             `json:"status"`
	Due         *string            `json:"due"`
	Recurrence  *string            `json:"recurrence"`
	ParentID    *int64             `json:"parent_id"`
	CreatedAt   response.DateTime  `json:"created_at"`
	UpdatedAt   response.DateTime  `json:"updated_at"`
	CompletedAt *response.DateTime `json:"completed_at"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:        t.ID,
		Title:     t.Title,
		Notes:     t.Notes,
		Tags:      t.Tags,
		Priority:  string(t.Priority),
		Status:    string(t.Status),
		ParentID:  t.ParentID,
		CreatedAt: response.DateTime(t.CreatedAt),
		UpdatedAt: response.DateTime(t.UpdatedAt),
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if t.Due != nil {
		due := t.Due.String()
		resp.Due = &due
	}
	if t.Recurrence != nil {
		rec := string(*t.Recurrence)
		resp.Recurrence = &rec
	}
	if t.CompletedAt != nil {
		done := response.DateTime(*t.CompletedAt)
		resp.CompletedAt = &done
	}
	return resp
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func newListResp(out task.ListOutput) listResp {
	resp := listResp{Tasks: make([]taskResp, 0, len(out.Tasks)), Total: out.Total}
	for _, t := range out.Tasks {
		resp.Tasks = append(resp.Tasks, newTaskResp(t))
	}
	return resp
}

type doneResp struct {
	Task    taskResp  `json:"task"`
	Spawned *taskResp `json:"spawned"`
}

func newDoneResp(out task.DoneOutput) doneResp {
	resp := doneResp{Task: newTaskResp(out.Task)}
	if out.Spawned != nil {
		spawned := newTaskResp(*out.Spawned)
		resp.Spawned = &spawned
	}
	return resp
}

type bulkResp struct {
	Affected     int     `json:"affected"`
	CommittedIDs []int64 `json:"committed_ids"`
}

type tagCountResp struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type statsResp struct {
	Total          int            `json:"total"`
	Open           int            `json:"open"`
	Done           int            `json:"done"`
	CompletionRate float64        `json:"completion_rate"`
	OpenByPriority map[string]int `json:"open_by_priority"`
	Overdue        int            `json:"overdue"`
	DueToday       int            `json:"due_today"`
	DueThisWeek    int            `json:"due_this_week"`
	Recurring      int            `json:"recurring"`
	TopTags        []tagCountResp `json:"top_tags"`
}

func newStatsResp(out task.StatsOutput) statsResp {
	resp := statsResp{
		Total:          out.Total,
		Open:           out.Open,
		Done:           out.Done,
		CompletionRate: out.CompletionRate,
		OpenByPriority: make(map[string]int, len(out.OpenByPriority)),
		Overdue:        out.Overdue,
		DueToday:       out.DueToday,
		DueThisWeek:    out.DueThisWeek,
		Recurring:      out.Recurring,
		TopTags:        make([]tagCountResp, 0, len(out.TagHistogram)),
	}
	for priority, n := range out.OpenByPriority {
		resp.OpenByPriority[string(priority)] = n
	}
	for _, tc := range out.TagHistogram {
		resp.TopTags = append(resp.TopTags, tagCountResp{Tag: tc.Tag, Count: tc.Count})
	}
	return resp
}

type importResp struct {
	Imported int        `json:"imported"`
	Tasks    []taskResp `json:"tasks"`
}

func newImportResp(out task.ImportV1Output) importResp {
	resp := importResp{Imported: out.Imported, Tasks: make([]taskResp, 0, len(out.Tasks))}
	for _, t := range out.Tasks {
		resp.Tasks = append(resp.Tasks, newTaskResp(t))
	}
	return resp
}
