package system

type Logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

func logResult(l Logger, err error, ok, failed string) error {
	if err != nil {
		l.Errorf("tty", "%s: %v", failed, err)
	} else {
		l.Infof("tty", "%s", ok)
	}
	return err
}

// EnterGraphics puts the console into graphics mode with the cursor hidden
// and returns a function that undoes both. Failures are logged only; the face
// still renders on a console that stays in text mode.
func EnterGraphics(l Logger) (restore func()) {
	_ = logResult(l, SetGraphicsMode(), "KD_GRAPHICS set", "KD_GRAPHICS failed")
	_ = logResult(l, HideCursor(), "cursor hidden", "hide cursor failed")
	return func() {
		_ = logResult(l, ShowCursor(), "cursor shown", "show cursor failed")
		_ = logResult(l, RestoreTextMode(), "KD_TEXT set", "KD_TEXT failed")
	}
}
