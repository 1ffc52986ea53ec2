package service

import (
	"time"

	"github.com/carson-networks/cashbook-server/internal/storage/business"
)

// Business represents a business in the service layer.
type Business struct {
	ID          int64
	UserID      int64
	Name        string
	Description *string
	Industry    string
	FoundedYear int
	Revenue     float64
	Employees   int
	Location    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BusinessCreate carries the fields for creating a business. The owner comes
// from the authenticated identity, not from here.
type BusinessCreate struct {
	Name        string
	Description *string
	Industry    string
	FoundedYear int
	Revenue     float64
	Employees   int
	Location    string
}

// BusinessUpdate replaces every mutable field.
type BusinessUpdate struct {
	Name        string
	Description *string
	Industry    string
	FoundedYear int
	Revenue     float64
	Employees   int
	Location    string
}

// BusinessPatch carries optional fields; nil means "leave unchanged".
type BusinessPatch struct {
	Name        *string
	Description *string
	Industry    *string
	FoundedYear *int
	Revenue     *float64
	Employees   *int
	Location    *string
}

// BusinessListFilter specifies listing parameters.
type BusinessListFilter struct {
	Industry *string
	Skip     int
	Limit    int
}

// BusinessStats is the aggregate overview across all businesses.
type BusinessStats struct {
	TotalBusinesses int64
	TotalEmployees  int64
	AverageRevenue  float64
	Industries      []string
}

func businessFromStorage(row *business.Business) *Business {
	return &Business{
		ID:          row.ID,
		UserID:      row.UserID,
		Name:        row.Name,
		Description: row.Description,
		Industry:    row.Industry,
		FoundedYear: row.FoundedYear,
		Revenue:     row.Revenue,
		Employees:   row.Employees,
		Location:    row.Location,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
