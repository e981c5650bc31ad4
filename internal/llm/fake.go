package llm

import "context"

// FakeClient returns a canned reply for offline use and tests.
type FakeClient struct {
	Reply   string
	Err     error
	Prompts []string
}

func (f *FakeClient) Name() string { return "FakeLLM" }
func (f *FakeClient) Close() error { return nil }

func (f *FakeClient) Generate(ctx context.Context, prompt string) (string, error) {
	f.Prompts = append(f.Prompts, prompt)
	if f.Err != nil {
		return "", f.Err
	}
	return f.Reply, nil
}
