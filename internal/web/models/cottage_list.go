package models

import "github.com/NotOriginal333/hotel-lab4/internal/resortapi"

// CottageList is the accumulated state of the cottage list screen.
type CottageList struct {
	Cottages []resortapi.Cottage `json:"cottages"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"page_size"`
	// HasMore is inferred from the last page being full. The API gives no total,
	// so a full last page may still be followed by an empty one.
	HasMore bool `json:"has_more"`
}

func NewCottageList(pageSize int) *CottageList {
	return &CottageList{PageSize: pageSize}
}

// NextPage is the page the "Show More" action fetches.
func (l *CottageList) NextPage() int {
	return l.Page + 1
}

// Append records page as loaded and adds exactly its items.
func (l *CottageList) Append(page int, cottages []resortapi.Cottage) {
	l.Cottages = append(l.Cottages, cottages...)
	l.Page = page
	l.HasMore = len(cottages) == l.PageSize
}
