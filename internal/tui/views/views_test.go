package views

import (
	"testing"

	"github.com/jordip/pawpal/internal/care"
)

func newTestStore(t *testing.T) *care.Store {
	t.Helper()
	owner, err := care.NewOwner("Jordan", 120)
	if err != nil {
		t.Fatalf("NewOwner: %v", err)
	}
	return care.NewStore(owner)
}

func addTestPet(t *testing.T, store *care.Store, name string) *care.Pet {
	t.Helper()
	pet, err := care.NewPet(name, "dog", 3)
	if err != nil {
		t.Fatalf("NewPet: %v", err)
	}
	if err := store.AddPet(pet); err != nil {
		t.Fatalf("AddPet: %v", err)
	}
	return pet
}

func addTestTask(t *testing.T, store *care.Store, pet *care.Pet, name string) *care.Task {
	t.Helper()
	task, err := care.NewTask(care.TaskSpec{
		Name:            name,
		DurationMinutes: 30,
		Priority:        4,
		Type:            care.TaskWalk,
		PetID:           pet.ID,
	})
	if err != nil {
		t.Fatalf("NewTask: %v", err)
	}
	store.AddTask(task)
	return task
}
