package cmd

import (
	"chime/logging"
	"chime/sound"
)

// PlayCmd plays a notification sound
type PlayCmd struct {
	SoundType string `arg:"" optional:"" default:"prompt" help:"Sound to play: success or prompt (unrecognized values behave as prompt)"`
}

// effectiveSoundType applies the default_sound setting when the positional
// argument was left at its default value.
func (p *PlayCmd) effectiveSoundType(cli *CLI) string {
	if p.SoundType == "prompt" && cli.settings != nil && cli.settings.DefaultSound != "" {
		return cli.settings.DefaultSound
	}
	return p.SoundType
}

// Run executes the sound playing logic
func (p *PlayCmd) Run(cli *CLI) error {
	soundType := p.effectiveSoundType(cli)

	if cli.settings.Muted() {
		logging.Logger.Debug("Sound muted via settings, skipping playback", "sound_type", soundType)
		return nil
	}

	logging.Logger.Info("Playing notification sound",
		"sound_type", soundType,
		"platform", sound.DetectPlatform().String())
	sound.Play(soundType)
	return nil
}
