package review

import (
	"context"
	"fmt"
	"log"

	"codereview/internal/llm"
)

// ClientSource hands out the shared model client. Satisfied by llm.Provider.
type ClientSource interface {
	Client(ctx context.Context) (llm.Client, error)
	Ready() error
}

// Service runs the review pipeline: detect language, build the prompt, call
// the model, sanitize and parse the reply, normalize it into a report.
type Service struct {
	source ClientSource
}

func NewService(source ClientSource) *Service {
	return &Service{source: source}
}

// Ready reports whether the model client is constructible (configuration
// present). It never makes a network call.
func (s *Service) Ready() error {
	return s.source.Ready()
}

// Review analyzes one source file and returns an always-valid report, or one
// of the kinded errors: ErrService when the model call fails,
// ErrInvalidModelResponse when the reply is not JSON-shaped, ErrMalformedJSON
// when it opens like JSON but does not parse. Anything the normalizer can
// repair is repaired silently and logged, never surfaced as an error.
func (s *Service) Review(ctx context.Context, source, filename string) (CodeReviewReport, error) {
	language := DetectLanguage(filename)
	log.Printf("starting review for %s (%d bytes, language %s)", filename, len(source), language)

	prompt := BuildPrompt(source, filename)

	cli, err := s.source.Client(ctx)
	if err != nil {
		return CodeReviewReport{}, fmt.Errorf("%w: %v", ErrService, err)
	}
	raw, err := cli.Generate(ctx, prompt)
	if err != nil {
		return CodeReviewReport{}, fmt.Errorf("%w: %v", ErrService, err)
	}

	clean, err := Sanitize(raw)
	if err != nil {
		return CodeReviewReport{}, err
	}
	parsed, err := Parse(clean)
	if err != nil {
		return CodeReviewReport{}, err
	}

	report, diags := Normalize(parsed, language)
	for _, d := range diags {
		log.Printf("normalizer repair for %s: %s", filename, d)
	}
	log.Printf("review completed for %s: score %d, %d issues, %d repairs",
		filename, report.OverallScore, len(report.Issues), len(diags))
	return report, nil
}
