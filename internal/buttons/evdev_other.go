//go:build !linux

package buttons

// NewEvdevButtons returns a source that never fires; evdev is Linux only.
func NewEvdevButtons(logger Logger) Buttons {
	logger.Infof("input", "evdev input is not supported on this platform")
	return NewChanButtons()
}
