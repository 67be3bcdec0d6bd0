package redisad_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	redisad "matcha_map/internal/adapters/redis"
	"matcha_map/internal/domain"
)

func TestCache_RoundTripAndDel(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	key := "reviews:luxxe:50:-created_at"
	in := domain.ReviewsPage{Items: []domain.Review{
		{ID: "r1", CafeID: "luxxe", Rating: 5, Comment: "great", Author: "Ana"},
	}}

	var miss domain.ReviewsPage
	if ok, err := c.Get(ctx, key, &miss); err != nil || ok {
		t.Fatalf("empty cache: ok=%v err=%v", ok, err)
	}

	if err := c.Set(ctx, key, in, 60); err != nil {
		t.Fatalf("set: %v", err)
	}
	if ttl := mr.TTL(key); ttl <= 0 {
		t.Fatalf("expected a positive TTL, got %v", ttl)
	}

	var out domain.ReviewsPage
	ok, err := c.Get(ctx, key, &out)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if len(out.Items) != 1 || out.Items[0].Author != "Ana" {
		t.Fatalf("round trip: %+v", out.Items)
	}

	if err := c.Del(ctx, key); err != nil {
		t.Fatalf("del: %v", err)
	}
	if ok, _ := c.Get(ctx, key, &out); ok {
		t.Fatal("key should be gone after Del")
	}
}
