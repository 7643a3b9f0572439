package response

import (
	c "collegereminders/internal/core/domain/common"
	"collegereminders/internal/core/domain/school"
	"time"
)

type School struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	DueDate   string    `json:"due_date"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *School) FromDomainSchool(ds school.School) {
	s.ID = int64(ds.ID)
	s.Name = ds.Name
	s.DueDate = c.FormatDate(ds.DueDate)
	s.IsActive = ds.IsActive
	s.CreatedAt = ds.CreatedAt
}

func Schools(schools []school.School) []School {
	result := make([]School, 0, len(schools))
	for _, ds := range schools {
		s := School{}
		s.FromDomainSchool(ds)
		result = append(result, s)
	}
	return result
}
