// Package sound plays cross-platform notification cues by invoking
// platform-native players (afplay, paplay, aplay, the Windows Beep API),
// falling back to a terminal bell when nothing else is available.
// Playback is best effort: no failure ever reaches the caller.
package sound

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
)

// Type identifies which semantic notification cue to play.
type Type string

const (
	Success Type = "success"
	Prompt  Type = "prompt"
)

// ParseType maps a raw label to a known sound type.
// Unrecognized labels behave as Prompt rather than erroring.
func ParseType(label string) Type {
	if label == string(Success) {
		return Success
	}
	return Prompt
}

// Platform identifies the host operating system family.
// It is detected once per invocation and never changes afterwards.
type Platform int

const (
	PlatformUnknown Platform = iota
	PlatformDarwin
	PlatformLinux
	PlatformWindows
)

// String returns the platform name for logging.
func (p Platform) String() string {
	switch p {
	case PlatformDarwin:
		return "darwin"
	case PlatformLinux:
		return "linux"
	case PlatformWindows:
		return "windows"
	default:
		return "unknown"
	}
}

// DetectPlatform maps runtime.GOOS to a Platform.
func DetectPlatform() Platform {
	switch runtime.GOOS {
	case "darwin":
		return PlatformDarwin
	case "linux":
		return PlatformLinux
	case "windows":
		return PlatformWindows
	default:
		return PlatformUnknown
	}
}

// Side-effect seams, overridden in tests.
var (
	lookPath = exec.LookPath

	runCommand = func(name string, args ...string) error {
		return exec.Command(name, args...).Run()
	}

	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	bellOut io.Writer = os.Stdout
)

// Play resolves and plays the cue for the given label on the current
// platform. It never returns an error: a notification must not interrupt
// the workflow that requested it.
func Play(label string) {
	PlayOn(DetectPlatform(), ParseType(label))
}

// PlayOn runs the fallback chain for the given platform and sound type.
// Any failure escaping a chain is swallowed here.
func PlayOn(p Platform, t Type) {
	defer func() {
		_ = recover()
	}()

	switch p {
	case PlatformDarwin:
		playDarwin(t)
	case PlatformLinux:
		playLinux(t)
	case PlatformWindows:
		playWindows(t)
	default:
		terminalBell()
	}
}

// terminalBell writes a single BEL control character to stdout, no newline.
// Universal last-resort fallback on every platform.
func terminalBell() {
	fmt.Fprint(bellOut, "\a")
}
