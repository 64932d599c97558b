package vocab

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// ErrNoItems is returned for sets without items.
var ErrNoItems = errors.New("vocabulary set has no items")

// Validate applies defaults to a decoded set and checks the boundary contract.
// Every problem found is reported in the returned error.
func Validate(set Set) (Set, error) {
	var errs []error
	if strings.TrimSpace(set.Name) == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if set.Language == "" {
		set.Language = DefaultLanguage
	}
	if len(set.Items) == 0 {
		errs = append(errs, ErrNoItems)
	}

	seen := make(map[string]int, len(set.Items))
	items := make([]Item, 0, len(set.Items))
	for i, item := range set.Items {
		if strings.TrimSpace(item.ID) == "" {
			errs = append(errs, fmt.Errorf("item %d: id must not be empty", i+1))
		} else if prev, ok := seen[item.ID]; ok {
			errs = append(errs, fmt.Errorf("item %d: duplicate id %q (first seen at item %d)", i+1, item.ID, prev+1))
		} else {
			seen[item.ID] = i
		}
		if strings.TrimSpace(item.Prompt) == "" {
			errs = append(errs, fmt.Errorf("item %d: prompt must not be empty", i+1))
		}
		if strings.TrimSpace(item.Answer) == "" {
			errs = append(errs, fmt.Errorf("item %d: answer must not be empty", i+1))
		}
		item.Aliases = lo.Uniq(item.Aliases)
		item.Tags = lo.Uniq(item.Tags)
		items = append(items, item)
	}
	set.Items = items

	if err := errors.Join(errs...); err != nil {
		return Set{}, err
	}
	return set, nil
}

// Tags returns the distinct tags used across the set in first-seen order.
func (s Set) Tags() []string {
	return lo.Uniq(lo.FlatMap(s.Items, func(item Item, _ int) []string {
		return item.Tags
	}))
}
