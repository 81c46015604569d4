package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/conduit-labs/conduit/internal/repository"
)

func TestClampPage(t *testing.T) {
	cases := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", 0, 0, 20, 0},
		{"negative limit", -5, 0, 20, 0},
		{"negative offset", 10, -1, 10, 0},
		{"over the cap", 500, 40, 20, 40},
		{"in range", 30, 60, 30, 60},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			limit, offset := tc.limit, tc.offset
			repository.ClampPage(&limit, &offset)
			assert.Equal(t, tc.wantLimit, limit)
			assert.Equal(t, tc.wantOffset, offset)
		})
	}
}
