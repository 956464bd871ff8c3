// Package paginate slices filtered rows into pages. Out-of-range page
// requests clamp into the valid range instead of failing.
package paginate

import "fmt"

// Page describes one resolved page of a filtered row set.
type Page struct {
	Number     int // 1-based; 0 only in the empty-set display sentinel
	Size       int
	TotalRows  int
	TotalPages int
}

// TotalPages computes max(1, ceil(count/size)). A size below 1 is treated
// as 1 so the math never divides by zero.
func TotalPages(count, size int) int {
	if size < 1 {
		size = 1
	}
	pages := (count + size - 1) / size
	return max(1, pages)
}

// Clamp resolves a requested page number against the filtered row count.
// The result's Number is always within [1, TotalPages].
func Clamp(requested, totalRows, size int) Page {
	if size < 1 {
		size = 1
	}
	total := TotalPages(totalRows, size)
	n := min(max(requested, 1), total)
	return Page{Number: n, Size: size, TotalRows: totalRows, TotalPages: total}
}

// Slice returns the zero-indexed window [(n-1)*size, n*size) of rows.
func Slice[T any](rows []T, p Page) []T {
	start := (p.Number - 1) * p.Size
	if start >= len(rows) {
		return rows[:0]
	}
	end := min(start+p.Size, len(rows))
	return rows[start:end]
}

// Label renders the page-info text. An empty filtered set reads
// "Page 0 of 0", the sentinel for the no-results state.
func (p Page) Label() string {
	if p.TotalRows == 0 {
		return "Page 0 of 0"
	}
	return fmt.Sprintf("Page %d of %d", p.Number, p.TotalPages)
}

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool { return p.TotalRows > 0 && p.Number > 1 }

// HasNext reports whether a next page exists.
func (p Page) HasNext() bool { return p.TotalRows > 0 && p.Number < p.TotalPages }
