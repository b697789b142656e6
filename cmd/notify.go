package cmd

import (
	"github.com/gen2brain/beeep"

	"chime/logging"
	"chime/sound"
)

// NotifyCmd sends a desktop notification and plays a matching sound cue.
// Both are best effort: a notification failure never fails the command.
type NotifyCmd struct {
	Title     string `arg:"" help:"Notification title"`
	Message   string `arg:"" optional:"" help:"Notification body"`
	SoundType string `help:"Sound to play alongside the notification" default:"success"`
	Silent    bool   `help:"Skip the sound cue"`
}

// Run executes the notification handler
func (n *NotifyCmd) Run(cli *CLI) error {
	logging.Logger.Info("Sending desktop notification", "title", n.Title)
	if err := beeep.Notify(n.Title, n.Message, ""); err != nil {
		// Desktop notifications may be unavailable (headless session, no
		// notification daemon); treat like a missing sound player
		logging.Logger.Warn("Failed to send desktop notification", "error", err)
	}

	if n.Silent || cli.settings.Muted() {
		logging.Logger.Debug("Skipping sound cue", "silent", n.Silent)
		return nil
	}

	logging.Logger.Debug("Playing sound cue", "sound_type", n.SoundType)
	sound.Play(n.SoundType)
	return nil
}
