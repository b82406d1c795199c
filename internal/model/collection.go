package model

// Collection is the full set of task records plus the id counter, treated
// as one persisted unit. NextID is always greater than every task id and
// survives restarts, so ids are never reused even after deletion.
type Collection struct {
	NextID int64
	Tasks  []Task
}

// NewCollection returns an empty collection ready for its first task.
func NewCollection() Collection {
	return Collection{NextID: 1}
}

// Index returns the position of the task with the given id, or -1.
func (c *Collection) Index(id int64) int {
	for i := range c.Tasks {
		if c.Tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// Get returns a pointer to the task with the given id for in-place
// mutation. The pointer must not outlive the collection.
func (c *Collection) Get(id int64) (*Task, bool) {
	if i := c.Index(id); i >= 0 {
		return &c.Tasks[i], true
	}
	return nil, false
}

// AssignID hands out the next id and advances the counter.
func (c *Collection) AssignID() int64 {
	id := c.NextID
	c.NextID++
	return id
}

// MaxID returns the largest task id present, 0 when empty.
func (c *Collection) MaxID() int64 {
	var max int64
	for i := range c.Tasks {
		if c.Tasks[i].ID > max {
			max = c.Tasks[i].ID
		}
	}
	return max
}
