//go:build !windows

package sound

import "errors"

var errToneUnsupported = errors.New("native tone generation is windows-only")

func nativeBeep(freqHz, durationMs uint32) error {
	return errToneUnsupported
}

func nativeMessageBeep() error {
	return errToneUnsupported
}
