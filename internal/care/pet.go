package care

import "fmt"

// Pet represents a pet with basic information and care needs. The Owner
// field is a lookup-only back-reference (the owner's name), never used to
// mutate the owner.
type Pet struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Species      string   `json:"species"`
	Age          int      `json:"age"`
	SpecialNeeds []string `json:"specialNeeds,omitempty"`
	Owner        string   `json:"owner,omitempty"`
}

// NewPet creates a pet with a fresh ID. Age must not be negative.
func NewPet(name, species string, age int) (*Pet, error) {
	if age < 0 {
		return nil, fmt.Errorf("age must not be negative, got %d: %w", age, ErrValidation)
	}
	id, err := newID()
	if err != nil {
		return nil, err
	}
	return &Pet{ID: id, Name: name, Species: species, Age: age}, nil
}

// AddSpecialNeed records a special care requirement. Empty and duplicate
// needs are ignored.
func (p *Pet) AddSpecialNeed(need string) {
	if need == "" {
		return
	}
	for _, n := range p.SpecialNeeds {
		if n == need {
			return
		}
	}
	p.SpecialNeeds = append(p.SpecialNeeds, need)
}

// Info returns a summary of the pet for display layers.
func (p *Pet) Info() map[string]any {
	return map[string]any{
		"name":         p.Name,
		"species":      p.Species,
		"age":          p.Age,
		"specialNeeds": p.SpecialNeeds,
		"owner":        p.Owner,
	}
}
