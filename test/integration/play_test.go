package integration_test

import (
	"os"
	"testing"

	"chime/test/integration/harness"
)

func TestPlay(t *testing.T) {
	// The play command attempts to play a notification sound. In a headless
	// environment (Docker container, CI) there is no audio device; the
	// command must still exit 0 because playback is best effort by contract.

	tests := []struct {
		name string
		args []string
	}{
		{"bare invocation defaults to prompt", []string{}},
		{"success sound type", []string{"success"}},
		{"prompt sound type", []string{"prompt"}},
		{"explicit play subcommand", []string{"play", "success"}},
		{"unrecognized sound type behaves as prompt", []string{"unknown-garbage"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			result := harness.RunCommand(t, env, tt.args...)

			harness.AssertSuccess(t, result)
		})
	}
}

func TestPlayRepeatedInvocationsAreIndependent(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	first := harness.RunCommand(t, env, "success")
	second := harness.RunCommand(t, env, "success")

	harness.AssertSuccess(t, first)
	harness.AssertSuccess(t, second)
}

func TestPlayMutedViaSettings(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.WriteSettings(map[string]any{"mute": true})

	result := harness.RunCommand(t, env, "success")

	harness.AssertSuccess(t, result)
	// Muted playback produces no output at all, not even a terminal bell
	if result.Stdout != "" {
		t.Errorf("Expected no stdout when muted, got %q", result.Stdout)
	}
}

func TestPlayWithCorruptSettingsStillWorks(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	// Invalid JSON: the binary warns on stderr and proceeds with defaults
	if err := os.WriteFile(env.SettingsPath(), []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write settings: %v", err)
	}

	result := harness.RunCommand(t, env, "prompt")

	harness.AssertSuccess(t, result)
}
