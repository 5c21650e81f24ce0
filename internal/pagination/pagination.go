// Package pagination computes page windows and the page envelope returned by
// list endpoints.
package pagination

const (
	DefaultPage = 1
	DefaultSize = 50
	MaxSize     = 100

	// EmptyPages is the page count reported when there is nothing to page over.
	EmptyPages = 0
)

// Params selects one page. Page is 1-based.
type Params struct {
	Page int
	Size int
}

// Default returns the params used when the caller sends none.
func Default() Params {
	return Params{Page: DefaultPage, Size: DefaultSize}
}

// Offset is the index of the first item on the page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Size
}

// Limit is the maximum number of items on the page.
func (p Params) Limit() int {
	return p.Size
}

// PastEnd reports whether the page starts at or beyond the last of total
// items. It compares page numbers so huge Page values cannot wrap.
func (p Params) PastEnd(total int64) bool {
	if p.Page < 1 || p.Size < 1 || total <= 0 {
		return true
	}
	size := int64(p.Size)
	pages := total / size
	if total%size != 0 {
		pages++
	}
	return int64(p.Page-1) >= pages
}

// Page is the envelope for one page of an ordered sequence.
type Page[T any] struct {
	Items []T `json:"items"`
	Page  int `json:"page"`
	Size  int `json:"size"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// New wraps an already-windowed slice of items.
func New[T any](items []T, p Params, total int) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items: items,
		Page:  p.Page,
		Size:  p.Size,
		Total: total,
		Pages: Pages(total, p.Size),
	}
}

// Pages returns ceil(total/size).
func Pages(total, size int) int {
	if total <= 0 || size <= 0 {
		return EmptyPages
	}
	return (total + size - 1) / size
}

// Slice returns the window of all selected by p. The result is empty when the
// offset runs past the end.
func Slice[T any](all []T, p Params) []T {
	if p.PastEnd(int64(len(all))) {
		return []T{}
	}
	off := p.Offset()
	end := off + p.Limit()
	if end > len(all) {
		end = len(all)
	}
	return all[off:end]
}

// Paginate windows an in-memory ordered sequence and wraps it in an envelope.
func Paginate[T any](all []T, p Params) Page[T] {
	return New(Slice(all, p), p, len(all))
}
