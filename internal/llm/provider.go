package llm

import (
	"context"
	"errors"
	"sync"
)

var ErrNotConfigured = errors.New("llm: GEMINI_API_KEY is not set")

// ProviderOptions configures the lazily built client.
type ProviderOptions struct {
	APIKey string
	Model  string
	RPS    float64
	Burst  int
}

// Provider owns the process-wide model client. The client is built on first
// use behind a sync.Once so concurrent cold-start requests race-free share
// one handle, and it is reused for the process's lifetime.
type Provider struct {
	opts ProviderOptions

	once sync.Once
	cli  Client
	err  error
}

func NewProvider(opts ProviderOptions) *Provider {
	return &Provider{opts: opts}
}

// Ready reports whether the client can be constructed, without making a
// network call. Used by the readiness probe.
func (p *Provider) Ready() error {
	if p.opts.APIKey == "" {
		return ErrNotConfigured
	}
	return nil
}

// Client returns the shared model client, building it on first call.
func (p *Provider) Client(ctx context.Context) (Client, error) {
	p.once.Do(func() {
		if err := p.Ready(); err != nil {
			p.err = err
			return
		}
		inner, err := NewGeminiClient(ctx, p.opts.APIKey, p.opts.Model)
		if err != nil {
			p.err = err
			return
		}
		p.cli = Wrap(inner, Logging(), RateLimit(p.opts.RPS, p.opts.Burst))
	})
	return p.cli, p.err
}

// Close releases the client if one was ever built.
func (p *Provider) Close() error {
	if p.cli != nil {
		return p.cli.Close()
	}
	return nil
}
