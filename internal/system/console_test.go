package system

import (
	"fmt"
	"testing"
)

type countingLogger struct{ infos, errors int }

func (l *countingLogger) Infof(string, string, ...interface{})  { l.infos++ }
func (l *countingLogger) Errorf(string, string, ...interface{}) { l.errors++ }

func TestLogResult(t *testing.T) {
	l := &countingLogger{}
	if err := logResult(l, nil, "ok", "failed"); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	want := fmt.Errorf("boom")
	if err := logResult(l, want, "ok", "failed"); err != want {
		t.Fatalf("error not passed through: %v", err)
	}
	if l.infos != 1 || l.errors != 1 {
		t.Fatalf("infos=%d errors=%d", l.infos, l.errors)
	}
}
