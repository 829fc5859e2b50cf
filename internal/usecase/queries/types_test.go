//go:build unit

package queries_test

import (
	"testing"

	"library-api/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	testCases := []struct {
		name       string
		number     int
		size       int
		wantNumber int
		wantSize   int
	}{
		{name: "in range", number: 2, size: 10, wantNumber: 2, wantSize: 10},
		{name: "zero page clamps to first", number: 0, size: 10, wantNumber: 1, wantSize: 10},
		{name: "negative page clamps to first", number: -3, size: 10, wantNumber: 1, wantSize: 10},
		{name: "zero size falls back to default", number: 1, size: 0, wantNumber: 1, wantSize: queries.DefaultPageSize},
		{name: "oversized page is capped", number: 1, size: 500, wantNumber: 1, wantSize: queries.MaxPageSize},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := queries.NewPage(tc.number, tc.size)
			assert.Equal(t, tc.wantNumber, p.Number)
			assert.Equal(t, tc.wantSize, p.Size)
		})
	}
}

func TestPageOffset(t *testing.T) {
	assert.Equal(t, 0, queries.NewPage(1, 20).Offset())
	assert.Equal(t, 40, queries.NewPage(3, 20).Offset())
	assert.Equal(t, 10, queries.NewPage(3, 10).Limit())
}
