package llm

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func TestProvider_ReadyWithoutKey(t *testing.T) {
	p := NewProvider(ProviderOptions{Model: "gemini-2.5-flash"})
	if err := p.Ready(); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestProvider_ReadyWithKey(t *testing.T) {
	p := NewProvider(ProviderOptions{APIKey: "k", Model: "gemini-2.5-flash"})
	if err := p.Ready(); err != nil {
		t.Fatalf("expected ready, got %v", err)
	}
}

func TestProvider_ClientWithoutKeyFailsOnce(t *testing.T) {
	p := NewProvider(ProviderOptions{})
	if _, err := p.Client(context.Background()); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	// First caller wins; later callers see the same cached outcome.
	if _, err := p.Client(context.Background()); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected cached ErrNotConfigured, got %v", err)
	}
}

func TestProvider_ConcurrentColdStartIsSingleInit(t *testing.T) {
	p := NewProvider(ProviderOptions{})
	var wg sync.WaitGroup
	errs := make([]error, 16)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = p.Client(context.Background())
		}(i)
	}
	wg.Wait()
	for i, err := range errs {
		if !errors.Is(err, ErrNotConfigured) {
			t.Fatalf("caller %d got %v", i, err)
		}
	}
}

func TestProvider_CloseWithoutClient(t *testing.T) {
	if err := NewProvider(ProviderOptions{}).Close(); err != nil {
		t.Fatalf("Close on unbuilt provider: %v", err)
	}
}
