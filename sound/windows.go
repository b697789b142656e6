package sound

// tone holds parameters for the native Windows Beep API.
type tone struct {
	freqHz     uint32
	durationMs uint32
}

// Tone parameters per sound type: success is a short high-pitched tone,
// everything else a slightly lower, longer one.
var windowsTones = map[Type]tone{
	Success: {freqHz: 1000, durationMs: 100},
	Prompt:  {freqHz: 800, durationMs: 150},
}

// Native facilities, overridable in tests. The real implementations live in
// tone_windows.go; on other platforms they report unsupported so the chain
// moves on.
var (
	beepTone    = nativeBeep
	messageBeep = nativeMessageBeep
)

// playWindows emits the tone for the sound type through the kernel32 Beep
// API, falling back to the generic system notification sound (MessageBeep)
// and finally the terminal bell.
func playWindows(t Type) {
	tn, ok := windowsTones[t]
	if !ok {
		tn = windowsTones[Prompt]
	}

	if err := beepTone(tn.freqHz, tn.durationMs); err == nil {
		return
	}
	if err := messageBeep(); err == nil {
		return
	}
	terminalBell()
}
