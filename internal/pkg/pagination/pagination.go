// Package pagination carries page/page-size parameters between handlers
// and repositories.
package pagination

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PaginationParams is the normalized page request.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Normalize clamps the params into valid bounds.
func (p PaginationParams) Normalize() PaginationParams {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Limit returns the SQL LIMIT for the params.
func (p PaginationParams) Limit() int { return p.Normalize().PageSize }

// Offset returns the SQL OFFSET for the params.
func (p PaginationParams) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.PageSize
}

// PaginationResult describes one page of a result set.
type PaginationResult struct {
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}

// NewResult builds a PaginationResult from a total row count.
func NewResult(total int64, params PaginationParams) *PaginationResult {
	n := params.Normalize()
	return &PaginationResult{Page: n.Page, PageSize: n.PageSize, Total: total}
}
