package views

// Paginator tracks the selected row and the visible page window over the
// flat record list. The cursor is an absolute index; the window is
// derived from the page offset and size.
type Paginator struct {
	pageSize   int
	pageOffset int
	cursor     int
	totalItems int
}

// NewPaginator creates a paginator. A non-positive page size falls back
// to 10.
func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Paginator{pageSize: pageSize}
}

// SetTotal updates the item count, clamping the cursor when the list
// shrank under it.
func (p *Paginator) SetTotal(total int) {
	p.totalItems = total
	if p.cursor >= total && total > 0 {
		p.cursor = total - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
	p.snapPageToCursor()
}

// Cursor returns the absolute index of the selected row.
func (p *Paginator) Cursor() int {
	return p.cursor
}

// CursorUp moves the selection one row up. Returns false at the top.
func (p *Paginator) CursorUp() bool {
	if p.cursor == 0 {
		return false
	}
	p.cursor--
	p.snapPageToCursor()
	return true
}

// CursorDown moves the selection one row down. Returns false at the
// bottom.
func (p *Paginator) CursorDown() bool {
	if p.cursor >= p.totalItems-1 {
		return false
	}
	p.cursor++
	p.snapPageToCursor()
	return true
}

// VisibleRange returns the half-open [start, end) window of the current
// page.
func (p *Paginator) VisibleRange() (int, int) {
	end := p.pageOffset + p.pageSize
	if end > p.totalItems {
		end = p.totalItems
	}
	return p.pageOffset, end
}

// TotalPages returns the page count, at least 1 even for an empty list.
func (p *Paginator) TotalPages() int {
	if p.totalItems == 0 {
		return 1
	}
	return (p.totalItems + p.pageSize - 1) / p.pageSize
}

// CurrentPage returns the 1-based page number.
func (p *Paginator) CurrentPage() int {
	return p.pageOffset/p.pageSize + 1
}

// NextPage advances one page and selects its first row.
func (p *Paginator) NextPage() bool {
	if p.pageOffset+p.pageSize >= p.totalItems {
		return false
	}
	p.pageOffset += p.pageSize
	p.cursor = p.pageOffset
	return true
}

// PrevPage goes back one page and selects its first row.
func (p *Paginator) PrevPage() bool {
	if p.pageOffset == 0 {
		return false
	}
	p.pageOffset -= p.pageSize
	if p.pageOffset < 0 {
		p.pageOffset = 0
	}
	p.cursor = p.pageOffset
	return true
}

// snapPageToCursor shifts the window onto the cursor's page when the
// cursor left the visible range.
func (p *Paginator) snapPageToCursor() {
	if p.cursor >= p.pageOffset && p.cursor < p.pageOffset+p.pageSize {
		return
	}
	p.pageOffset = p.cursor / p.pageSize * p.pageSize
}
