// Package care holds the PawPal entity model (owners, pets, tasks) and the
// task store that owns the live records for one owner.
package care

import (
	"fmt"
	"time"

	"github.com/jordip/pawpal/internal/util"
)

func newID() (string, error) {
	id, err := util.GenerateShortID()
	if err != nil {
		return "", fmt.Errorf("failed to generate id: %w", err)
	}
	return id, nil
}

func validDate(s string) error {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, ErrValidation)
	}
	return nil
}
