package recs

import "recohub/pkg/models"

// PageSize is the fixed number of cards per page.
const PageSize = 10

// Pager holds the full normalized result set for the current query and
// slices it into pages. It never mutates the sequence and never re-fetches;
// replacing the results (new query, regenerate) resets to page 1.
type Pager struct {
	all  []models.Recommendation
	page int
}

func NewPager() *Pager {
	return &Pager{page: 1}
}

func (p *Pager) SetResults(recs []models.Recommendation) {
	p.all = recs
	p.page = 1
}

func (p *Pager) All() []models.Recommendation {
	return p.all
}

func (p *Pager) Current() int {
	return p.page
}

func (p *Pager) TotalPages() int {
	return (len(p.all) + PageSize - 1) / PageSize
}

// GoToPage returns the items for page n (1-based). Requesting a page
// outside [1, TotalPages] is a caller error and returns nil without moving
// the current page.
func (p *Pager) GoToPage(n int) []models.Recommendation {
	if n < 1 || n > p.TotalPages() {
		return nil
	}
	p.page = n

	start := (n - 1) * PageSize
	end := start + PageSize
	if end > len(p.all) {
		end = len(p.all)
	}
	return p.all[start:end]
}
