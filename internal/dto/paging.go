package dto

import (
	"math"

	"github.com/yukikurage/project-tracker-api/internal/repository"
)

// Paging is the pagination metadata returned with every list response.
type Paging struct {
	PageIndex  int   `json:"pageIndex"`
	PageSize   int   `json:"pageSize"`
	TotalCount int64 `json:"totalCount"`
	PageNumber int   `json:"pageNumber"`
}

// ListResponse is the envelope combining pagination metadata with one page
// of results.
type ListResponse[T any] struct {
	Paging Paging `json:"paging"`
	Items  []T    `json:"items"`
}

// NewPaging builds the paging metadata from a filter after the query engine
// has set its TotalCount. PageNumber is the total page count, computed with
// float division so a partial last page still counts; a non-positive page
// size yields zero instead of dividing by it.
func NewPaging(filter *repository.Filter) Paging {
	p := Paging{
		PageIndex:  filter.PageIndex,
		PageSize:   filter.PageSize,
		TotalCount: filter.TotalCount,
	}
	if filter.PageSize > 0 {
		p.PageNumber = int(math.Ceil(float64(filter.TotalCount) / float64(filter.PageSize)))
	}
	return p
}

// NewListResponse assembles the page envelope. Items is never null in the
// serialized form.
func NewListResponse[T any](filter *repository.Filter, items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{
		Paging: NewPaging(filter),
		Items:  items,
	}
}
