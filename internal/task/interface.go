package task

import "context"

// UseCase defines the business logic interface for the task domain.
// Every operation loads the collection, works on it in memory and saves it
// back when mutated; a failed operation leaves the stored state untouched.
type UseCase interface {
	// Create validates and inserts a new task, assigning the next id.
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)

	// Detail fetches a single task by id.
	Detail(ctx context.Context, id int64) (DetailOutput, error)

	// Edit applies a sparse patch; only supplied fields change.
	Edit(ctx context.Context, input EditInput) (EditOutput, error)

	// Done completes an open task. A recurring task atomically spawns its
	// follow-up with the due date advanced by one period.
	Done(ctx context.Context, id int64) (DoneOutput, error)

	// Delete removes a task permanently. Recurrence children stand alone.
	Delete(ctx context.Context, id int64) error

	// List filters, searches and sorts the collection.
	List(ctx context.Context, input ListInput) (ListOutput, error)

	// Bulk applies one action to every task matching a filter.
	Bulk(ctx context.Context, input BulkInput) (BulkOutput, error)

	// Stats computes the aggregate snapshot.
	Stats(ctx context.Context) (StatsOutput, error)

	// Tags returns the tag usage histogram.
	Tags(ctx context.Context) ([]TagCount, error)

	// ImportV1 upgrades a legacy flat-format file into the collection.
	ImportV1(ctx context.Context, input ImportV1Input) (ImportV1Output, error)
}
