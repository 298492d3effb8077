package inmemory

import (
	"context"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danilovkiri/dk_go_sharegourmet/internal/service/modelshop"
)

func TestCache_GetPut(t *testing.T) {
	ctx := context.Background()
	lat := 35.5
	c := InitCache(0)
	shop := modelshop.Shop{ID: "J001", Name: "Ramen Taro", Genre: "Ramen", Latitude: &lat}

	_, ok := c.Get(ctx, "J001")
	assert.False(t, ok)

	c.Put(ctx, "J001", shop)
	got, ok := c.Get(ctx, "J001")
	assert.True(t, ok)
	assert.Equal(t, shop, got)

	_, ok = c.Get(ctx, "J002")
	assert.False(t, ok)
}

func TestCache_Capacity(t *testing.T) {
	ctx := context.Background()
	c := InitCache(2)
	c.Put(ctx, "A", modelshop.Shop{ID: "A"})
	c.Put(ctx, "B", modelshop.Shop{ID: "B"})
	_, _ = c.Get(ctx, "A")
	c.Put(ctx, "C", modelshop.Shop{ID: "C"})

	assert.Equal(t, 2, c.Len())
	_, ok := c.Get(ctx, "B")
	assert.False(t, ok)
	_, ok = c.Get(ctx, "A")
	assert.True(t, ok)
}

func TestCache_Unbounded(t *testing.T) {
	ctx := context.Background()
	c := InitCache(0)
	for i := 0; i < 1000; i++ {
		id := strconv.Itoa(i)
		c.Put(ctx, id, modelshop.Shop{ID: id})
	}
	assert.Equal(t, 1000, c.Len())
}

func TestCache_Concurrent(t *testing.T) {
	ctx := context.Background()
	c := InitCache(0)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := strconv.Itoa(i % 5)
			c.Put(ctx, id, modelshop.Shop{ID: id})
			_, _ = c.Get(ctx, id)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 5, c.Len())
}
