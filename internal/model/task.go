package model

// ID identifies a task within one list.
type ID int64

// Task is the domain model for a todo entry.
type Task struct {
	ID    ID     `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// List is an ordered snapshot of tasks in insertion order.
// Values handed out are never mutated afterwards; writers build a new slice.
type List []Task

// Find returns the task with the given id.
func (l List) Find(id ID) (Task, bool) {
	if i := l.Index(id); i >= 0 {
		return l[i], true
	}
	return Task{}, false
}

// Index returns the position of id, or -1.
func (l List) Index(id ID) int {
	for i, t := range l {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// HasTitle reports whether a task with exactly this title exists (case-sensitive).
func (l List) HasTitle(title string) bool {
	for _, t := range l {
		if t.Title == title {
			return true
		}
	}
	return false
}

func (l List) Stats() (done, pending int) {
	for _, t := range l {
		if t.Done {
			done++
		} else {
			pending++
		}
	}
	return
}

// Clone returns a copy that shares nothing with l.
func (l List) Clone() List {
	out := make(List, len(l))
	copy(out, l)
	return out
}
