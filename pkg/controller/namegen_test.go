package controller

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"NameForge/pkg/generate"
)

// stubService returns a canned result or error per call.
type stubService struct {
	fn func(ctx context.Context, prompt string) (*generate.Result, error)
}

func (s *stubService) GenerateName(ctx context.Context, prompt string) (*generate.Result, error) {
	return s.fn(ctx, prompt)
}

// recordingRepo captures saved results.
type recordingRepo struct {
	mu    sync.Mutex
	saved []generate.Result
	err   error
}

func (r *recordingRepo) Save(ctx context.Context, result *generate.Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.saved = append(r.saved, *result)
	return nil
}

func (r *recordingRepo) List(ctx context.Context, limit int) ([]generate.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]generate.Result(nil), r.saved...), nil
}

func (r *recordingRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.saved)
}

func waitForGenerator(t *testing.T, ch <-chan NameGeneratorState, cond func(NameGeneratorState) bool) NameGeneratorState {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case s := <-ch:
			if cond(s) {
				return s
			}
		case <-deadline:
			t.Fatal("timed out waiting for generator state")
		}
	}
}

func TestNameGeneratorInitialState(t *testing.T) {
	c := NewNameGeneratorController(generate.NewSimulated(), nil, nil)
	defer c.Close()

	s := c.State()
	assert.Empty(t, s.Prompt)
	assert.Empty(t, s.GeneratedText)
	assert.False(t, s.Generating)
	assert.Empty(t, s.ErrorMessage)
}

func TestNameGeneratorUpdatePrompt(t *testing.T) {
	c := NewNameGeneratorController(generate.NewSimulated(), nil, nil)
	defer c.Close()

	c.UpdatePrompt("a coffee shop")
	assert.Equal(t, "a coffee shop", c.State().Prompt)

	c.UpdatePrompt("")
	assert.Empty(t, c.State().Prompt)
}

func TestNameGeneratorGenerateSuccess(t *testing.T) {
	svc := &stubService{fn: func(ctx context.Context, prompt string) (*generate.Result, error) {
		return &generate.Result{ID: "r1", Prompt: prompt, Name: "Velvet Bean", CreatedAt: time.Now()}, nil
	}}
	repo := &recordingRepo{}
	c := NewNameGeneratorController(svc, repo, nil)
	defer c.Close()

	ch, id := c.Subscribe()
	defer c.Unsubscribe(id)

	c.UpdatePrompt("a coffee shop")
	c.GenerateName()
	assert.True(t, c.State().Generating, "Generating flips on before the call starts")

	s := waitForGenerator(t, ch, func(s NameGeneratorState) bool {
		return !s.Generating && s.GeneratedText != ""
	})
	assert.Equal(t, "Velvet Bean", s.GeneratedText)
	assert.Equal(t, "a coffee shop", s.Prompt, "the prompt survives generation")
	assert.Empty(t, s.ErrorMessage)

	assert.Eventually(t, func() bool { return repo.count() == 1 },
		time.Second, 10*time.Millisecond, "the result is persisted to history")
}

func TestNameGeneratorGenerateFailureKeepsPreviousText(t *testing.T) {
	var fail bool
	svc := &stubService{fn: func(ctx context.Context, prompt string) (*generate.Result, error) {
		if fail {
			return nil, generate.NewGenerationError("backend unavailable")
		}
		return &generate.Result{ID: "r1", Prompt: prompt, Name: "First Name"}, nil
	}}
	c := NewNameGeneratorController(svc, nil, nil)
	defer c.Close()

	ch, id := c.Subscribe()
	defer c.Unsubscribe(id)

	c.GenerateName()
	waitForGenerator(t, ch, func(s NameGeneratorState) bool { return s.GeneratedText == "First Name" })

	fail = true
	c.GenerateName()
	s := waitForGenerator(t, ch, func(s NameGeneratorState) bool { return s.ErrorMessage != "" })
	assert.Contains(t, s.ErrorMessage, "backend unavailable")
	assert.False(t, s.Generating)
	assert.Equal(t, "First Name", s.GeneratedText, "a failed run keeps the previous result")
}

func TestNameGeneratorRetryClearsErrorOnly(t *testing.T) {
	svc := &stubService{fn: func(ctx context.Context, prompt string) (*generate.Result, error) {
		return nil, generate.NewGenerationError("backend unavailable")
	}}
	c := NewNameGeneratorController(svc, nil, nil)
	defer c.Close()

	ch, id := c.Subscribe()
	defer c.Unsubscribe(id)

	c.UpdatePrompt("keep me")
	c.GenerateName()
	waitForGenerator(t, ch, func(s NameGeneratorState) bool { return s.ErrorMessage != "" })

	c.Retry()
	s := waitForGenerator(t, ch, func(s NameGeneratorState) bool { return s.ErrorMessage == "" })
	assert.Equal(t, "keep me", s.Prompt)
	assert.False(t, s.Generating, "Retry does not resubmit the request")
}

func TestNameGeneratorHistoryFailureStaysOffScreen(t *testing.T) {
	svc := &stubService{fn: func(ctx context.Context, prompt string) (*generate.Result, error) {
		return &generate.Result{ID: "r1", Name: "Quiet Name"}, nil
	}}
	repo := &recordingRepo{err: assert.AnError}
	c := NewNameGeneratorController(svc, repo, nil)
	defer c.Close()

	ch, id := c.Subscribe()
	defer c.Unsubscribe(id)

	c.GenerateName()
	s := waitForGenerator(t, ch, func(s NameGeneratorState) bool { return s.GeneratedText != "" })
	assert.Equal(t, "Quiet Name", s.GeneratedText)
	assert.Empty(t, s.ErrorMessage, "history write failures never surface into UI state")
}

func TestNameGeneratorCloseDiscardsLateCompletion(t *testing.T) {
	started := make(chan struct{})
	svc := &stubService{fn: func(ctx context.Context, prompt string) (*generate.Result, error) {
		close(started)
		<-ctx.Done()
		return nil, ctx.Err()
	}}
	c := NewNameGeneratorController(svc, nil, nil)

	c.GenerateName()
	<-started
	c.Close()

	s := c.State()
	assert.Empty(t, s.ErrorMessage, "a completion after Close must not mutate state")
	assert.Empty(t, s.GeneratedText)
}
