package model

import (
	"sort"
	"time"
)

// Visibility holds the two independent timestamps that gate public access.
// Restoring clears DeletedAt only; it never touches PublishedAt.
type Visibility struct {
	PublishedAt *time.Time
	DeletedAt   *time.Time
}

// Listable is implemented by every entity that goes through the visibility policy.
type Listable interface {
	Visibility() Visibility
	SortName() string
}

// IsVisible reports whether an entity may be shown. Privileged viewers see everything;
// everyone else sees only live entities whose publish time is strictly in the past.
func IsVisible(v Visibility, now time.Time, privileged bool) bool {
	if privileged {
		return true
	}
	return v.DeletedAt == nil && v.PublishedAt != nil && v.PublishedAt.Before(now)
}

// FilterVisible returns the items the viewer may see, in their original order.
func FilterVisible[T Listable](items []T, now time.Time, privileged bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if IsVisible(item.Visibility(), now, privileged) {
			out = append(out, item)
		}
	}
	return out
}

// SortForListing orders items in place.
// Privileged: soft-deleted first (latest deletion first), then name ascending.
// Public: name ascending.
func SortForListing[T Listable](items []T, privileged bool) {
	sort.SliceStable(items, func(i, j int) bool {
		if privileged {
			di, dj := items[i].Visibility().DeletedAt, items[j].Visibility().DeletedAt
			switch {
			case di != nil && dj == nil:
				return true
			case di == nil && dj != nil:
				return false
			case di != nil && dj != nil && !di.Equal(*dj):
				return di.After(*dj)
			}
		}
		return items[i].SortName() < items[j].SortName()
	})
}

// VisibleListing filters then sorts, the full listing pipeline used by the services.
func VisibleListing[T Listable](items []T, now time.Time, privileged bool) []T {
	out := FilterVisible(items, now, privileged)
	SortForListing(out, privileged)
	return out
}
