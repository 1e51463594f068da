package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPagination(t *testing.T) {
	tests := []struct {
		name    string
		total   int64
		page    int
		perPage int
		want    Pagination
	}{
		{
			"middle page",
			95, 2, 20,
			Pagination{Page: 2, PerPage: 20, Total: 95, TotalPages: 5, HasNext: true, HasPrev: true},
		},
		{
			"first page",
			95, 1, 20,
			Pagination{Page: 1, PerPage: 20, Total: 95, TotalPages: 5, HasNext: true, HasPrev: false},
		},
		{
			"last page",
			95, 5, 20,
			Pagination{Page: 5, PerPage: 20, Total: 95, TotalPages: 5, HasNext: false, HasPrev: true},
		},
		{
			"empty result keeps one page",
			0, 1, 20,
			Pagination{Page: 1, PerPage: 20, Total: 0, TotalPages: 1, HasNext: false, HasPrev: false},
		},
		{
			"defaults on bad input",
			10, 0, 0,
			Pagination{Page: 1, PerPage: 20, Total: 10, TotalPages: 1, HasNext: false, HasPrev: false},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildPagination(tt.total, tt.page, tt.perPage))
		})
	}
}

func TestStatusToErrorCode(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", statusToErrorCode(400))
	assert.Equal(t, "UNAUTHORIZED", statusToErrorCode(401))
	assert.Equal(t, "FORBIDDEN", statusToErrorCode(403))
	assert.Equal(t, "NOT_FOUND", statusToErrorCode(404))
	assert.Equal(t, "CONFLICT", statusToErrorCode(409))
	assert.Equal(t, "INTERNAL_ERROR", statusToErrorCode(500))
	assert.Equal(t, "ERROR", statusToErrorCode(418))
}
