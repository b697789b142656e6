package sound

import "path/filepath"

// Sound theme locations common across Linux distributions, in priority order.
var linuxSoundDirs = []string{
	"/usr/share/sounds/freedesktop/stereo/",
	"/usr/share/sounds/ubuntu/stereo/",
	"/usr/share/sounds/gnome/default/alerts/",
}

// Candidate filenames per sound type, in priority order.
var linuxSounds = map[Type][]string{
	Success: {"complete.oga", "message.oga", "glass.oga"},
	Prompt:  {"dialog-warning.oga", "message-new-instant.oga", "bell.oga"},
}

// playLinux probes the theme directories for a candidate file and plays the
// first one found via paplay (PulseAudio), or aplay (ALSA) when paplay is
// not installed. The chain returns as soon as an existing file has been
// handed to a player; the player's exit status is not inspected, only
// whether its executable could be found. With no candidate file anywhere it
// tries the beep utility and finally the terminal bell.
func playLinux(t Type) {
	names, ok := linuxSounds[t]
	if !ok {
		names = linuxSounds[Prompt]
	}

	for _, dir := range linuxSoundDirs {
		for _, name := range names {
			asset := filepath.Join(dir, name)
			if !fileExists(asset) {
				continue
			}
			if player, err := lookPath("paplay"); err == nil {
				_ = runCommand(player, asset)
				return
			}
			if player, err := lookPath("aplay"); err == nil {
				_ = runCommand(player, "-q", asset)
				return
			}
		}
	}

	if beeper, err := lookPath("beep"); err == nil {
		_ = runCommand(beeper, "-f", "800", "-l", "100")
		return
	}

	terminalBell()
}
