// Package listview implements the list pattern shared by the admin views:
// zero-or-more predicate filters, free-text matching, fixed-size pages.
package listview

import "strings"

// Filter keeps items matching every predicate, preserving input order.
func Filter[T any](items []T, preds ...func(T) bool) []T {
	out := make([]T, 0, len(items))
next:
	for _, it := range items {
		for _, p := range preds {
			if !p(it) {
				continue next
			}
		}
		out = append(out, it)
	}
	return out
}

// MatchText reports whether query is a case-insensitive substring of any
// field. An empty query matches everything.
func MatchText(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// TotalPages is at least 1 so an empty list still has one (empty) page.
func TotalPages(totalItems, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	n := (totalItems + pageSize - 1) / pageSize
	if n < 1 {
		n = 1
	}
	return n
}

// ClampPage clamps page into [1, totalPages].
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Page slices one fixed-size page out of items and returns it together with
// the clamped page number actually served.
func Page[T any](items []T, page, pageSize int) ([]T, int) {
	total := TotalPages(len(items), pageSize)
	page = ClampPage(page, total)
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}, page
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], page
}
