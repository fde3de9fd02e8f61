package service

import "strings"

// duplicateKey holds the attributes two catalog rows are compared by.
type duplicateKey struct {
	barcode string
	tmdbID  *int64
	title   string
}

func newDuplicateKey(title string, barcode *string, tmdbID *int64) duplicateKey {
	k := duplicateKey{title: strings.ToLower(strings.TrimSpace(title)), tmdbID: tmdbID}
	if barcode != nil {
		k.barcode = strings.TrimSpace(*barcode)
	}
	return k
}

// matches reports whether a and b share a non-empty barcode, a TMDB id or
// a case-insensitive title.
func (a duplicateKey) matches(b duplicateKey) bool {
	if a.barcode != "" && a.barcode == b.barcode {
		return true
	}
	if a.tmdbID != nil && b.tmdbID != nil && *a.tmdbID == *b.tmdbID {
		return true
	}
	return a.title != "" && a.title == b.title
}

// groupDuplicates forms groups around seed rows in input order: every later
// row matching the seed joins its group. A grouped row never seeds or joins
// another group. Groups of one are dropped.
func groupDuplicates[T any](rows []T, key func(T) duplicateKey) [][]T {
	keys := make([]duplicateKey, len(rows))
	for i, row := range rows {
		keys[i] = key(row)
	}

	grouped := make([]bool, len(rows))
	groups := [][]T{}

	for i := range rows {
		if grouped[i] {
			continue
		}

		group := []T{rows[i]}
		for j := i + 1; j < len(rows); j++ {
			if grouped[j] || !keys[i].matches(keys[j]) {
				continue
			}
			group = append(group, rows[j])
			grouped[j] = true
		}

		if len(group) > 1 {
			grouped[i] = true
			groups = append(groups, group)
		}
	}

	return groups
}
