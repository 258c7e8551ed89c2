package variants

import (
	"errors"
	"fmt"
	"sort"

	"storefront/internal/models"
)

var ErrDuplicateCombination = errors.New("duplicate variant attribute combination")

// DuplicateError names two variants that carry the same attribute set.
type DuplicateError struct {
	First       int
	Second      int
	Combination string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("variants %d and %d share attributes %q", e.First, e.Second, e.Combination)
}

func (e *DuplicateError) Unwrap() error {
	return ErrDuplicateCombination
}

// ValidateCombinations rejects variant lists where two variants carry the
// same attribute set, since selection could never tell them apart.
// Variants without attributes are ignored.
func ValidateCombinations(variants []models.Variant) error {
	seen := make(map[string]int, len(variants))
	var errs []error

	for i, v := range variants {
		key := combinationKey(v)
		if key == "" {
			continue
		}
		if first, ok := seen[key]; ok {
			errs = append(errs, &DuplicateError{First: first, Second: i, Combination: key})
			continue
		}
		seen[key] = i
	}

	return errors.Join(errs...)
}

func combinationKey(v models.Variant) string {
	sel := SelectionOf(&v)
	keys := make([]string, 0, len(sel))
	for key := range sel {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return Summary(sel, keys)
}
