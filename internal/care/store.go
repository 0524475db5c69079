package care

// Store owns the authoritative pet and task lists for one owner. It is the
// single source of truth the scheduler reads from. All access is
// sequential; a single logical actor drives the store at a time.
type Store struct {
	owner *Owner
	tasks []*Task
}

// NewStore creates a store for owner. The store shares the owner's pet
// list, so pets added through either side stay in sync.
func NewStore(owner *Owner) *Store {
	return &Store{owner: owner}
}

// Owner returns the owner this store belongs to.
func (s *Store) Owner() *Owner {
	return s.owner
}

// AddPet registers pet with the owner. Duplicate adds are no-ops and
// return ErrPetExists.
func (s *Store) AddPet(pet *Pet) error {
	return s.owner.AddPet(pet)
}

// Pets returns the owner's pets in insertion order.
func (s *Store) Pets() []*Pet {
	return s.owner.Pets
}

// PetByID looks a pet up by its identifier.
func (s *Store) PetByID(id string) *Pet {
	for _, p := range s.owner.Pets {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// AddTask appends task to the task list. Adding the same task twice is a
// silent no-op; insertion order is the only ordering guarantee.
func (s *Store) AddTask(task *Task) {
	for _, t := range s.tasks {
		if t == task {
			return
		}
	}
	s.tasks = append(s.tasks, task)
}

// RemoveTask removes task by identity. Removing an absent task is a silent
// no-op so call sites stay simple.
func (s *Store) RemoveTask(task *Task) {
	for i, t := range s.tasks {
		if t == task {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return
		}
	}
}

// Tasks returns all tasks in insertion order.
func (s *Store) Tasks() []*Task {
	return s.tasks
}

// TaskByID looks a task up by its identifier.
func (s *Store) TaskByID(id string) *Task {
	for _, t := range s.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// TasksByPet returns the tasks for one pet, preserving insertion order.
func (s *Store) TasksByPet(pet *Pet) []*Task {
	var out []*Task
	for _, t := range s.tasks {
		if pet != nil && t.PetID == pet.ID {
			out = append(out, t)
		}
	}
	return out
}

// TasksByType returns the tasks of one type, preserving insertion order.
func (s *Store) TasksByType(taskType TaskType) []*Task {
	var out []*Task
	for _, t := range s.tasks {
		if t.Type == taskType {
			out = append(out, t)
		}
	}
	return out
}

// IncompleteTasks returns the tasks not yet completed, preserving
// insertion order.
func (s *Store) IncompleteTasks() []*Task {
	var out []*Task
	for _, t := range s.tasks {
		if !t.Completed {
			out = append(out, t)
		}
	}
	return out
}

// PetName resolves a task's pet to its display name. Unknown pets render
// as an empty string rather than failing the caller.
func (s *Store) PetName(task *Task) string {
	if p := s.PetByID(task.PetID); p != nil {
		return p.Name
	}
	return ""
}
