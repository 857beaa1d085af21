package logics

import (
	"context"
	"errors"
	"testing"

	"crayon-server/internal/failures"
	"crayon-server/internal/models"

	"go.uber.org/zap"
)

func TestFreeChat(t *testing.T) {
	gen := newFakeGeneration()
	cache := newFakeCache()
	svc := NewFreeService(gen, cache, zap.NewNop())

	entity, err := svc.FreeChat(context.Background(), models.Free{Prompt: "a dog"})
	if err != nil {
		t.Fatalf("FreeChat returned error: %v", err)
	}
	if entity.Prompt != "a dog" || entity.Image != gen.imageURL {
		t.Errorf("entity = %+v", entity)
	}
	if cache.sets != 1 {
		t.Errorf("cache stored %d entries, want 1", cache.sets)
	}
}

func TestFreeChatEmptyPrompt(t *testing.T) {
	gen := newFakeGeneration()
	svc := NewFreeService(gen, newFakeCache(), zap.NewNop())

	_, err := svc.FreeChat(context.Background(), models.Free{})
	if !failures.IsKind(err, failures.KindInvalidRequest) {
		t.Fatalf("error kind = %v, want invalid request", failures.KindOf(err))
	}
	if len(gen.calls) != 0 {
		t.Errorf("generation called %v before validation", gen.calls)
	}
}

func TestFreeChatCacheHitSkipsGeneration(t *testing.T) {
	gen := newFakeGeneration()
	cache := newFakeCache()
	cache.entries["a dog"] = models.FreeEntity{Prompt: "a dog", Image: "cached.png"}
	svc := NewFreeService(gen, cache, zap.NewNop())

	entity, err := svc.FreeChat(context.Background(), models.Free{Prompt: "a dog"})
	if err != nil {
		t.Fatalf("FreeChat returned error: %v", err)
	}
	if entity.Image != "cached.png" {
		t.Errorf("image = %q, want cached value", entity.Image)
	}
	if len(gen.calls) != 0 {
		t.Errorf("generation called %v on cache hit", gen.calls)
	}
}

func TestFreeChatGenerationError(t *testing.T) {
	gen := newFakeGeneration()
	gen.err = errors.New("upstream down")
	svc := NewFreeService(gen, newFakeCache(), zap.NewNop())

	_, err := svc.FreeChat(context.Background(), models.Free{Prompt: "a dog"})
	if !failures.IsKind(err, failures.KindGeneration) {
		t.Fatalf("error kind = %v, want generation", failures.KindOf(err))
	}
	if !errors.Is(err, gen.err) {
		t.Error("cause not preserved through failure")
	}
}

func TestFreeChatWithoutCache(t *testing.T) {
	gen := newFakeGeneration()
	svc := NewFreeService(gen, nil, zap.NewNop())

	entity, err := svc.FreeChat(context.Background(), models.Free{Prompt: "a dog"})
	if err != nil {
		t.Fatalf("FreeChat returned error: %v", err)
	}
	if entity.Image != gen.imageURL {
		t.Errorf("entity = %+v", entity)
	}
}
