package hooks

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/cockup/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePrompter struct {
	answer int
	err    error
	asked  []string
}

func (f *fakePrompter) AskInt(label string) (int, error) {
	f.asked = append(f.asked, label)
	return f.answer, f.err
}

func selectConfig() *config.Config {
	return &config.Config{
		Rules: []config.Rule{
			{OnStart: []config.Hook{hook("prepare", "true")}, OnEnd: []config.Hook{hook("cleanup", "false")}},
		},
		Hooks: &config.GlobalHooks{
			PreBackup: []config.Hook{hook("snapshot", "true")},
		},
	}
}

func TestSelectAndRunNoHooks(t *testing.T) {
	r, out, _ := newTestRunner(t)
	prompter := &fakePrompter{answer: 1}

	summary, err := r.SelectAndRun(context.Background(), &config.Config{}, prompter)
	require.NoError(t, err)
	assert.Nil(t, summary)
	assert.Empty(t, prompter.asked, "must not prompt when no hooks exist")
	assert.Equal(t, []string{"error: No hooks defined in the configuration."}, lines(out))
}

func TestSelectAndRunListsAndRunsChoice(t *testing.T) {
	tests := []struct {
		name       string
		choice     int
		wantHook   string
		wantResult string
	}{
		{"first rule hook", 1, "prepare", "==> Completed 1/1 hook successfully."},
		{"failing hook", 2, "cleanup", "==> Completed 0/1 hook successfully."},
		{"global hook", 3, "snapshot", "==> Completed 1/1 hook successfully."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, out, _ := newTestRunner(t)
			prompter := &fakePrompter{answer: tt.choice}

			summary, err := r.SelectAndRun(context.Background(), selectConfig(), prompter)
			require.NoError(t, err)
			require.NotNil(t, summary)
			assert.Equal(t, []string{"Select a hook"}, prompter.asked)
			require.Equal(t, 1, summary.Total())
			assert.Equal(t, tt.wantHook, summary.Results[0].Hook.Name)

			got := lines(out)
			require.GreaterOrEqual(t, len(got), 5)
			assert.Equal(t, []string{
				"==> Available hooks:",
				"[1] prepare",
				"[2] cleanup",
				"[3] snapshot",
				"==> Running hook (1/1): " + tt.wantHook,
			}, got[:5])
			assert.Equal(t, tt.wantResult, got[len(got)-1])
		})
	}
}

func TestSelectAndRunOutOfRange(t *testing.T) {
	for _, choice := range []int{0, -1, 4} {
		r, out, _ := newTestRunner(t)
		prompter := &fakePrompter{answer: choice}

		summary, err := r.SelectAndRun(context.Background(), selectConfig(), prompter)
		require.NoError(t, err)
		assert.Nil(t, summary, "choice %d should not run anything", choice)

		// Listing only: no error line, no run, no summary.
		assert.Equal(t, []string{
			"==> Available hooks:",
			"[1] prepare",
			"[2] cleanup",
			"[3] snapshot",
		}, lines(out))
	}
}

func TestSelectAndRunRuleHooksWithoutGlobalHooks(t *testing.T) {
	r, out, _ := newTestRunner(t)
	cfg := &config.Config{
		Rules: []config.Rule{{OnStart: []config.Hook{hook("HookA", "true")}}},
	}

	summary, err := r.SelectAndRun(context.Background(), cfg, &fakePrompter{answer: 1})
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, 1, summary.Succeeded())
	assert.Contains(t, lines(out), "[1] HookA")
}

func TestSelectAndRunListsUnnamedHooks(t *testing.T) {
	r, out, _ := newTestRunner(t)
	cfg := &config.Config{
		Hooks: &config.GlobalHooks{
			PreBackup: []config.Hook{{Command: config.Command{Args: []string{"true"}}}},
		},
	}

	summary, err := r.SelectAndRun(context.Background(), cfg, &fakePrompter{answer: 1})
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, StatusSkipped, summary.Results[0].Status)
	assert.Equal(t, []string{
		"==> Available hooks:",
		"[1] (unnamed)",
		"error: Hook 1 missing `name`, skipping...",
		"==> Completed 0/1 hook successfully.",
	}, lines(out))
}

func TestSelectAndRunPromptError(t *testing.T) {
	r, _, _ := newTestRunner(t)
	promptErr := errors.New("interrupted")

	summary, err := r.SelectAndRun(context.Background(), selectConfig(), &fakePrompter{err: promptErr})
	assert.ErrorIs(t, err, promptErr)
	assert.Nil(t, summary)
}
