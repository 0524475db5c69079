package demo

import (
	"fmt"
	"time"

	"github.com/jordip/pawpal/internal/care"
)

// Fixture is the in-memory demo scenario: one owner, two pets, and a mix
// of tasks covering priorities, scheduled times (with one deliberate
// overlap), and a daily recurring medication.
type Fixture struct {
	Store *care.Store
	Dog   *care.Pet
	Cat   *care.Pet
}

// NewFixture builds the demo scenario. Today's date seeds the recurring
// task's due date.
func NewFixture() (*Fixture, error) {
	owner, err := care.NewOwner("Jordan", 180)
	if err != nil {
		return nil, err
	}
	store := care.NewStore(owner)

	dog, err := care.NewPet("Max", "dog", 3)
	if err != nil {
		return nil, err
	}
	dog.AddSpecialNeed("joint medication")

	cat, err := care.NewPet("Luna", "cat", 2)
	if err != nil {
		return nil, err
	}
	cat.AddSpecialNeed("indoor only")

	if err := store.AddPet(dog); err != nil {
		return nil, err
	}
	if err := store.AddPet(cat); err != nil {
		return nil, err
	}

	today := time.Now().Format(care.DateLayout)
	specs := []care.TaskSpec{
		{Name: "Evening walk", DurationMinutes: 45, Priority: 4, Type: care.TaskWalk, PetID: dog.ID, ScheduledTime: "18:00"},
		{Name: "Morning medication", DurationMinutes: 5, Priority: 5, Type: care.TaskMedication, PetID: dog.ID, ScheduledTime: "08:00", Frequency: care.FrequencyDaily, DueDate: today},
		{Name: "Lunch feeding", DurationMinutes: 10, Priority: 5, Type: care.TaskFeed, PetID: dog.ID},
		{Name: "Morning walk", DurationMinutes: 30, Priority: 5, Type: care.TaskWalk, PetID: dog.ID, ScheduledTime: "08:00"},
		{Name: "Play session", DurationMinutes: 25, Priority: 3, Type: care.TaskPlaytime, PetID: dog.ID},
		{Name: "Cat feeding", DurationMinutes: 10, Priority: 5, Type: care.TaskFeed, PetID: cat.ID},
		{Name: "Litter box cleaning", DurationMinutes: 15, Priority: 4, Type: care.TaskGrooming, PetID: cat.ID},
		{Name: "Cat enrichment", DurationMinutes: 20, Priority: 3, Type: care.TaskEnrichment, PetID: cat.ID},
		{Name: "Dog grooming", DurationMinutes: 60, Priority: 2, Type: care.TaskGrooming, PetID: dog.ID},
	}
	for _, spec := range specs {
		task, err := care.NewTask(spec)
		if err != nil {
			return nil, fmt.Errorf("demo fixture task %q: %w", spec.Name, err)
		}
		store.AddTask(task)
	}

	return &Fixture{Store: store, Dog: dog, Cat: cat}, nil
}
