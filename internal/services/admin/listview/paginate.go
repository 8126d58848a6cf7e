package listview

// Page is one window of a filtered collection.
type Page[T any] struct {
	Items        []T
	Page         int
	TotalPages   int
	TotalItems   int
	Size         int
	PrevDisabled bool
	NextDisabled bool
}

// Paginate slices items into fixed-size pages. TotalPages is at least 1 and
// page is clamped into [1, TotalPages].
func Paginate[T any](items []T, page int, size int) Page[T] {
	if size < 1 {
		size = 1
	}
	total := len(items)
	totalPages := (total + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	window := make([]T, end-start)
	copy(window, items[start:end])
	return Page[T]{
		Items:        window,
		Page:         page,
		TotalPages:   totalPages,
		TotalItems:   total,
		Size:         size,
		PrevDisabled: page == 1,
		NextDisabled: page == totalPages,
	}
}

// Offset is the zero-based index of the first item on the page.
func (p Page[T]) Offset() int {
	return (p.Page - 1) * p.Size
}
