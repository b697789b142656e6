package sound

// System sound assets shipped with every macOS install.
var darwinSounds = map[Type]string{
	Success: "/System/Library/Sounds/Hero.aiff",
	Prompt:  "/System/Library/Sounds/Blow.aiff",
}

// playDarwin plays the cue asset via afplay, falling back to an osascript
// beep when afplay is not installed. Player exit status is not inspected.
func playDarwin(t Type) {
	asset, ok := darwinSounds[t]
	if !ok {
		asset = darwinSounds[Prompt]
	}

	if player, err := lookPath("afplay"); err == nil {
		_ = runCommand(player, asset)
		return
	}

	if scripter, err := lookPath("osascript"); err == nil {
		_ = runCommand(scripter, "-e", "beep 1")
	}
}
