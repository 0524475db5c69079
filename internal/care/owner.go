package care

import (
	"errors"
	"fmt"
)

// ErrPetExists is returned when a pet is added twice. The add is a no-op;
// callers that want the permissive behavior ignore the error.
var ErrPetExists = errors.New("pet already added")

// Owner represents a pet owner with a daily time budget and preferences.
// The owner owns its pet records; pets hold only the owner's name back.
type Owner struct {
	Name                 string         `json:"name"`
	AvailableTimeMinutes int            `json:"availableTimeMinutes"`
	Preferences          map[string]any `json:"preferences,omitempty"`
	Pets                 []*Pet         `json:"pets"`
}

// NewOwner creates an owner. The time budget must not be negative.
func NewOwner(name string, availableTimeMinutes int) (*Owner, error) {
	if availableTimeMinutes < 0 {
		return nil, fmt.Errorf("available time must not be negative, got %d: %w",
			availableTimeMinutes, ErrValidation)
	}
	return &Owner{
		Name:                 name,
		AvailableTimeMinutes: availableTimeMinutes,
		Preferences:          map[string]any{},
	}, nil
}

// AvailableTime returns the daily time budget in minutes.
func (o *Owner) AvailableTime() int {
	return o.AvailableTimeMinutes
}

// SetPreferences merges prefs into the owner's preferences.
func (o *Owner) SetPreferences(prefs map[string]any) {
	if o.Preferences == nil {
		o.Preferences = map[string]any{}
	}
	for k, v := range prefs {
		o.Preferences[k] = v
	}
}

// AddPet appends pet to the owner's pet list and sets the back-reference.
// Adding the same pet twice leaves the list untouched and returns
// ErrPetExists.
func (o *Owner) AddPet(pet *Pet) error {
	for _, p := range o.Pets {
		if p == pet {
			return ErrPetExists
		}
	}
	o.Pets = append(o.Pets, pet)
	pet.Owner = o.Name
	return nil
}
