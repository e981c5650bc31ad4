package llm

import (
	"context"
	"testing"
	"time"
)

type spyingClient struct {
	next  Client
	times []time.Time
}

func (s *spyingClient) Name() string { return s.next.Name() }
func (s *spyingClient) Close() error { return s.next.Close() }
func (s *spyingClient) Generate(ctx context.Context, prompt string) (string, error) {
	s.times = append(s.times, time.Now())
	return s.next.Generate(ctx, prompt)
}

func TestWrap_Order(t *testing.T) {
	inner := &FakeClient{Reply: "ok"}
	cli := Wrap(inner, Logging(), RateLimit(0, 0))
	out, err := cli.Generate(context.Background(), "p")
	if err != nil || out != "ok" {
		t.Fatalf("Generate = %q, %v", out, err)
	}
	if cli.Name() != "FakeLLM" {
		t.Fatalf("Name = %q", cli.Name())
	}
}

func TestRateLimit_DisabledPassesThrough(t *testing.T) {
	cli := Wrap(&FakeClient{Reply: "ok"}, RateLimit(0, 0))
	start := time.Now()
	for i := 0; i < 10; i++ {
		if _, err := cli.Generate(context.Background(), "p"); err != nil {
			t.Fatal(err)
		}
	}
	if time.Since(start) > 100*time.Millisecond {
		t.Fatalf("disabled limiter throttled calls")
	}
}

func TestRateLimit_SpacesCallsAfterBurst(t *testing.T) {
	// rps=2, burst=1: the second call should wait roughly 500ms for a token.
	spy := &spyingClient{next: &FakeClient{Reply: "ok"}}
	cli := Wrap(spy, RateLimit(2, 1))
	t.Cleanup(func() { _ = cli.Close() })

	ctx := context.Background()
	if _, err := cli.Generate(ctx, "p"); err != nil {
		t.Fatal(err)
	}
	if _, err := cli.Generate(ctx, "p"); err != nil {
		t.Fatal(err)
	}
	if len(spy.times) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(spy.times))
	}
	if gap := spy.times[1].Sub(spy.times[0]); gap < 300*time.Millisecond {
		t.Fatalf("second call was not throttled, gap %s", gap)
	}
}

func TestRateLimit_AcquireHonorsContextCancel(t *testing.T) {
	cli := Wrap(&FakeClient{Reply: "ok"}, RateLimit(0.01, 1))
	t.Cleanup(func() { _ = cli.Close() })

	// Drain the single burst token.
	if _, err := cli.Generate(context.Background(), "p"); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := cli.Generate(ctx, "p"); err == nil {
		t.Fatal("expected context deadline error")
	}
}

func TestFakeClient_RecordsPrompts(t *testing.T) {
	f := &FakeClient{Reply: "r"}
	_, _ = f.Generate(context.Background(), "first")
	_, _ = f.Generate(context.Background(), "second")
	if len(f.Prompts) != 2 || f.Prompts[0] != "first" || f.Prompts[1] != "second" {
		t.Fatalf("prompts = %v", f.Prompts)
	}
}
