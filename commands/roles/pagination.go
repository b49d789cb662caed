package roles

import "fmt"

// PageSize is the number of roles shown per dashboard page.
const PageSize = 10

// PaginationState holds the current page over a fixed, pre-sorted role list.
type PaginationState struct {
	Roles     []Role
	PageIndex int
}

// NewPaginationState starts on the first page.
func NewPaginationState(roles []Role) *PaginationState {
	return &PaginationState{Roles: roles}
}

// TotalPages is ceil(len(Roles)/PageSize), never less than 1.
func (p *PaginationState) TotalPages() int {
	pages := (len(p.Roles) + PageSize - 1) / PageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// Advance moves the page index by delta. Callers check HasPrevious/HasNext first;
// the index is not clamped here.
func (p *PaginationState) Advance(delta int) {
	p.PageIndex += delta
}

// CurrentSlice returns the roles on the current page.
func (p *PaginationState) CurrentSlice() []Role {
	start := p.PageIndex * PageSize
	if start < 0 {
		start = 0
	}
	if start > len(p.Roles) {
		start = len(p.Roles)
	}
	end := min(start+PageSize, len(p.Roles))
	return p.Roles[start:end]
}

func (p *PaginationState) HasPrevious() bool {
	return p.PageIndex > 0
}

func (p *PaginationState) HasNext() bool {
	return p.PageIndex < p.TotalPages()-1
}

// Label is the page counter text, e.g. "Page 2/3".
func (p *PaginationState) Label() string {
	return fmt.Sprintf("Page %d/%d", p.PageIndex+1, p.TotalPages())
}
