package sequence

import (
	"context"
	"errors"
	"testing"

	"github.com/erp/production/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAllocator struct {
	next map[Category]int64
	err  error
}

func (s *stubAllocator) NextCode(_ context.Context, category Category) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	if _, ok := s.next[category]; !ok {
		s.next[category] = category.SeedValue()
	}
	s.next[category]++
	return s.next[category], nil
}

func TestCategory_RangesDoNotOverlap(t *testing.T) {
	seen := make(map[int64]Category)
	prefixes := make(map[string]Category)
	for _, c := range AllCategories() {
		assert.True(t, c.IsValid(), c)
		_, dup := seen[c.StartValue()]
		assert.False(t, dup, "start value of %s reused", c)
		seen[c.StartValue()] = c

		_, dup = prefixes[c.Prefix()]
		assert.False(t, dup, "prefix of %s reused", c)
		prefixes[c.Prefix()] = c

		assert.Equal(t, c.StartValue()-1, c.SeedValue())
	}
	assert.False(t, Category("invoice").IsValid())
}

func TestCategory_Format(t *testing.T) {
	assert.Equal(t, "PRD-800001", CategoryProductionOrder.Format(800001))
	assert.Equal(t, "WH-400012", CategoryWarehouse.Format(400012))
}

func TestNext(t *testing.T) {
	ctx := context.Background()

	t.Run("formats allocated codes in sequence", func(t *testing.T) {
		alloc := &stubAllocator{next: map[Category]int64{}}

		first, err := Next(ctx, alloc, CategoryArtisan)
		require.NoError(t, err)
		second, err := Next(ctx, alloc, CategoryArtisan)
		require.NoError(t, err)
		other, err := Next(ctx, alloc, CategoryWarehouse)
		require.NoError(t, err)

		assert.Equal(t, "ART-700001", first)
		assert.Equal(t, "ART-700002", second)
		assert.Equal(t, "WH-400001", other)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		_, err := Next(ctx, &stubAllocator{next: map[Category]int64{}}, Category("invoice"))
		assert.ErrorIs(t, err, shared.ErrValidation)
	})

	t.Run("propagates allocator errors", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := Next(ctx, &stubAllocator{err: boom}, CategoryClient)
		assert.ErrorIs(t, err, boom)
	})
}
