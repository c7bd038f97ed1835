package repository

// Pagination selects one page of a listing. Pages are 0-indexed.
type Pagination struct {
	Page  int
	Limit int
}

// Offset returns the number of rows skipped before the page starts.
func (p Pagination) Offset() int {
	return p.Page * p.Limit
}
