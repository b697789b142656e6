//go:build windows

package sound

import "golang.org/x/sys/windows"

var (
	kernel32        = windows.NewLazySystemDLL("kernel32.dll")
	user32          = windows.NewLazySystemDLL("user32.dll")
	procBeep        = kernel32.NewProc("Beep")
	procMessageBeep = user32.NewProc("MessageBeep")
)

// MB_OK selects the default system notification sound.
const mbOK = 0x00000000

// nativeBeep generates a tone at the given frequency and duration through
// the kernel32 Beep API.
func nativeBeep(freqHz, durationMs uint32) error {
	r, _, err := procBeep.Call(uintptr(freqHz), uintptr(durationMs))
	if r == 0 {
		return err
	}
	return nil
}

// nativeMessageBeep plays the default system notification sound.
func nativeMessageBeep() error {
	r, _, err := procMessageBeep.Call(uintptr(mbOK))
	if r == 0 {
		return err
	}
	return nil
}
