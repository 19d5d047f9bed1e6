package usecase

const (
	// DefaultPageSize applies when the caller does not override page_size.
	DefaultPageSize = 5
	// MaxPageSize caps caller-supplied page sizes.
	MaxPageSize = 20
)

// NormalizePage clamps pagination inputs to sane bounds. Oversized page sizes
// are clamped, never rejected.
func NormalizePage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return page, size
}
