package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"taskkeep/internal/model"
	"taskkeep/internal/task"
	taskHTTP "taskkeep/internal/task/delivery/http"
	"taskkeep/internal/task/query"
	"taskkeep/internal/task/repository"
	"taskkeep/pkg/log"
)

// mockUseCase lets each test inject just the methods it needs.
type mockUseCase struct {
	createFn func(ctx context.Context, input task.CreateInput) (task.CreateOutput, error)
	detailFn func(ctx context.Context, id int64) (task.DetailOutput, error)
	editFn   func(ctx context.Context, input task.EditInput) (task.EditOutput, error)
	doneFn   func(ctx context.Context, id int64) (task.DoneOutput, error)
	deleteFn func(ctx context.Context, id int64) error
	listFn   func(ctx context.Context, input task.ListInput) (task.ListOutput, error)
	bulkFn   func(ctx context.Context, input task.BulkInput) (task.BulkOutput, error)
	statsFn  func(ctx context.Context) (task.StatsOutput, error)
	tagsFn   func(ctx context.Context) ([]task.TagCount, error)
	importFn func(ctx context.Context, input task.ImportV1Input) (task.ImportV1Output, error)
}

func (m *mockUseCase) Create(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
	return m.createFn(ctx, input)
}
func (m *mockUseCase) Detail(ctx context.Context, id int64) (task.DetailOutput, error) {
	return m.detailFn(ctx, id)
}
func (m *mockUseCase) Edit(ctx context.Context, input task.EditInput) (task.EditOutput, error) {
	return m.editFn(ctx, input)
}
func (m *mockUseCase) Done(ctx context.Context, id int64) (task.DoneOutput, error) {
	return m.doneFn(ctx, id)
}
func (m *mockUseCase) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}
func (m *mockUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	return m.listFn(ctx, input)
}
func (m *mockUseCase) Bulk(ctx context.Context, input task.BulkInput) (task.BulkOutput, error) {
	return m.bulkFn(ctx, input)
}
func (m *mockUseCase) Stats(ctx context.Context) (task.StatsOutput, error) {
	return m.statsFn(ctx)
}
func (m *mockUseCase) Tags(ctx context.Context) ([]task.TagCount, error) {
	return m.tagsFn(ctx)
}
func (m *mockUseCase) ImportV1(ctx context.Context, input task.ImportV1Input) (task.ImportV1Output, error) {
	return m.importFn(ctx, input)
}

func newRouter(uc task.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	taskHTTP.RegisterRoutes(r.Group("/api/v1"), taskHTTP.New(log.NewNop(), uc))
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateHandler(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		uc := &mockUseCase{
			createFn: func(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
				if input.Title != "buy milk" || input.Priority != "high" {
					t.Errorf("input = %+v", input)
				}
				return task.CreateOutput{Task: model.Task{ID: 7, Title: input.Title, Priority: model.PriorityHigh, Status: model.StatusOpen}}, nil
			},
		}
		w := doJSON(newRouter(uc), http.MethodPost, "/api/v1/tasks", `{"title": "buy milk", "priority": "high"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}

		var resp struct {
			Data struct {
				ID  int64    `json:"id"`
				Due *string  `json:"due"`
				Tag []string `json:"tags"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if resp.Data.ID != 7 {
			t.Errorf("id = %d, want 7", resp.Data.ID)
		}
		// Absent due serializes as an explicit null.
		if !strings.Contains(w.Body.String(), `"due":null`) {
			t.Errorf("due not rendered as null: %s", w.Body.String())
		}
	})

	t.Run("Validation Failure Is 400", func(t *testing.T) {
		uc := &mockUseCase{
			createFn: func(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
				return task.CreateOutput{}, fmt.Errorf("%w: title must not be empty", task.ErrValidation)
			},
		}
		w := doJSON(newRouter(uc), http.MethodPost, "/api/v1/tasks", `{"title": "  "}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("Missing Title Rejected By Binding", func(t *testing.T) {
		uc := &mockUseCase{
			createFn: func(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
				t.Fatal("usecase must not be reached")
				return task.CreateOutput{}, nil
			},
		}
		w := doJSON(newRouter(uc), http.MethodPost, "/api/v1/tasks", `{"notes": "no title"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", task.ErrValidation, http.StatusBadRequest},
		{"invalid query", query.ErrInvalidQuery, http.StatusBadRequest},
		{"not found", task.ErrTaskNotFound, http.StatusNotFound},
		{"already done", task.ErrAlreadyDone, http.StatusConflict},
		{"corrupt store", repository.ErrCorruptStore, http.StatusInternalServerError},
		{"write failure", repository.ErrStoreWrite, http.StatusInternalServerError},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			uc := &mockUseCase{
				doneFn: func(ctx context.Context, id int64) (task.DoneOutput, error) {
					return task.DoneOutput{}, c.err
				},
			}
			w := doJSON(newRouter(uc), http.MethodPost, "/api/v1/tasks/1/done", "")
			if w.Code != c.want {
				t.Errorf("status = %d, want %d", w.Code, c.want)
			}
		})
	}
}

func TestDetailHandler(t *testing.T) {
	t.Run("Bad ID Never Reaches UseCase", func(t *testing.T) {
		uc := &mockUseCase{
			detailFn: func(ctx context.Context, id int64) (task.DetailOutput, error) {
				t.Fatal("usecase must not be reached")
				return task.DetailOutput{}, nil
			},
		}
		for _, path := range []string{"/api/v1/tasks/abc", "/api/v1/tasks/0", "/api/v1/tasks/-5"} {
			w := doJSON(newRouter(uc), http.MethodGet, path, "")
			if w.Code != http.StatusBadRequest {
				t.Errorf("%s: status = %d, want 400", path, w.Code)
			}
		}
	})
}

func TestListHandler(t *testing.T) {
	t.Run("Query Params Map To Input", func(t *testing.T) {
		var got task.ListInput
		uc := &mockUseCase{
			listFn: func(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
				got = input
				return task.ListOutput{Tasks: []model.Task{}, Total: 0}, nil
			},
		}
		w := doJSON(newRouter(uc), http.MethodGet, "/api/v1/tasks?status=open&tag=work&overdue=true&q=milk&sort=due", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if got.Filter.Status != "open" || got.Filter.Tag != "work" || !got.Filter.Overdue {
			t.Errorf("filter = %+v", got.Filter)
		}
		if got.Search != "milk" || got.Sort != "due" {
			t.Errorf("search/sort = %q/%q", got.Search, got.Sort)
		}
	})
}

func TestDoneHandler(t *testing.T) {
	t.Run("Spawned Task In Response", func(t *testing.T) {
		rec := model.RecurrenceDaily
		uc := &mockUseCase{
			doneFn: func(ctx context.Context, id int64) (task.DoneOutput, error) {
				parent := int64(1)
				return task.DoneOutput{
					Task:    model.Task{ID: 1, Title: "water plants", Status: model.StatusDone, Recurrence: &rec},
					Spawned: &model.Task{ID: 2, Title: "water plants", Status: model.StatusOpen, Recurrence: &rec, ParentID: &parent},
				}, nil
			},
		}
		w := doJSON(newRouter(uc), http.MethodPost, "/api/v1/tasks/1/done", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		var resp struct {
			Data struct {
				Spawned *struct {
					ID       int64  `json:"id"`
					ParentID *int64 `json:"parent_id"`
				} `json:"spawned"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if resp.Data.Spawned == nil || resp.Data.Spawned.ID != 2 {
			t.Errorf("spawned missing from response: %s", w.Body.String())
		}
	})
}

func TestBulkHandler(t *testing.T) {
	t.Run("Applied", func(t *testing.T) {
		uc := &mockUseCase{
			bulkFn: func(ctx context.Context, input task.BulkInput) (task.BulkOutput, error) {
				if input.Action != task.BulkActionSetPriority || input.Filter.Tag != "chore" {
					t.Errorf("input = %+v", input)
				}
				return task.BulkOutput{Affected: 2, CommittedIDs: []int64{1, 3}}, nil
			},
		}
		w := doJSON(newRouter(uc), http.MethodPost, "/api/v1/tasks/bulk",
			`{"filter": {"tag": "chore"}, "action": "set-priority", "priority": "high"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"affected":2`) {
			t.Errorf("body = %s", w.Body.String())
		}
	})

	t.Run("Mid-Batch Abort Reports Committed IDs", func(t *testing.T) {
		uc := &mockUseCase{
			bulkFn: func(ctx context.Context, input task.BulkInput) (task.BulkOutput, error) {
				return task.BulkOutput{Affected: 2, CommittedIDs: []int64{1, 3}},
					fmt.Errorf("task #5: %w", repository.ErrStoreWrite)
			},
		}
		w := doJSON(newRouter(uc), http.MethodPost, "/api/v1/tasks/bulk",
			`{"filter": {"tag": "chore"}, "action": "delete"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", w.Code)
		}
		var resp struct {
			Data struct {
				Affected     int     `json:"affected"`
				CommittedIDs []int64 `json:"committed_ids"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if resp.Data.Affected != 2 || len(resp.Data.CommittedIDs) != 2 {
			t.Errorf("partial result missing from error body: %s", w.Body.String())
		}
	})

	t.Run("Invalid Action Carries No Data", func(t *testing.T) {
		uc := &mockUseCase{
			bulkFn: func(ctx context.Context, input task.BulkInput) (task.BulkOutput, error) {
				return task.BulkOutput{}, fmt.Errorf("%w: unknown bulk action", query.ErrInvalidQuery)
			},
		}
		w := doJSON(newRouter(uc), http.MethodPost, "/api/v1/tasks/bulk",
			`{"filter": {}, "action": "explode"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		if strings.Contains(w.Body.String(), "committed_ids") {
			t.Errorf("validation failure must not carry partial data: %s", w.Body.String())
		}
	})
}

func TestImportV1Handler(t *testing.T) {
	t.Run("Unreadable File Is 500", func(t *testing.T) {
		uc := &mockUseCase{
			importFn: func(ctx context.Context, input task.ImportV1Input) (task.ImportV1Output, error) {
				return task.ImportV1Output{}, fmt.Errorf("%w: tasks-v1.json: unrecognized legacy format", repository.ErrCorruptStore)
			},
		}
		w := doJSON(newRouter(uc), http.MethodPost, "/api/v1/tasks/import/v1", `{"path": "tasks-v1.json"}`)
		if w.Code != http.StatusInternalServerError {
			t.Errorf("status = %d, want 500", w.Code)
		}
	})

	t.Run("Missing Path Is 400", func(t *testing.T) {
		uc := &mockUseCase{
			importFn: func(ctx context.Context, input task.ImportV1Input) (task.ImportV1Output, error) {
				t.Fatal("usecase must not be reached")
				return task.ImportV1Output{}, nil
			},
		}
		w := doJSON(newRouter(uc), http.MethodPost, "/api/v1/tasks/import/v1", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}
