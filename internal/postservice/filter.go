package postservice

import "github.com/google/uuid"

const (
	defaultLimit = 10
	maxLimit     = 100
)

// Filters describes a listing window plus the optional equality constraints.
// A nil Published or CategoryID imposes no constraint at all; only the
// parameters actually supplied narrow the result set.
type Filters struct {
	Page       int
	Limit      int
	Published  *bool
	CategoryID *uuid.UUID
}

// normalize applies the listing defaults: the page floors to 1 and the limit
// defaults to 10 and caps at 100.
func (f Filters) normalize() Filters {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	return f
}

func (f Filters) offset() int {
	return (f.Page - 1) * f.Limit
}

// Metadata accompanies every listing response.
type Metadata struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalCount int `json:"totalCount"`
	TotalPages int `json:"totalPages"`
}

// calculateMetadata derives the page count from the total matching row
// count. A total of zero yields zero pages. The page is echoed back as
// requested even when it lies beyond the last page.
func calculateMetadata(totalCount, page, limit int) Metadata {
	return Metadata{
		Page:       page,
		Limit:      limit,
		TotalCount: totalCount,
		TotalPages: (totalCount + limit - 1) / limit,
	}
}
