//go:build linux

package buttons

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"
)

// EvdevButtons watches Linux evdev devices under /dev/input/event* for the
// mapped function keys.
type EvdevButtons struct {
	Logger Logger
	Keys   map[uint16]Event
	Glob   string

	ch     chan Event
	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once
}

func NewEvdevButtons(logger Logger) Buttons {
	return &EvdevButtons{Logger: logger, Keys: DefaultKeys, Glob: "/dev/input/event*", ch: make(chan Event, 8)}
}

func (b *EvdevButtons) Events() <-chan Event { return b.ch }

// Start is best-effort: without input devices it logs and returns nil.
func (b *EvdevButtons) Start(ctx context.Context) error {
	paths, err := filepath.Glob(b.Glob)
	if err != nil || len(paths) == 0 {
		b.Logger.Infof("input", "no evdev devices found under %s", b.Glob)
		return nil
	}
	ctx, b.cancel = context.WithCancel(ctx)
	for _, path := range paths {
		b.wg.Add(1)
		go func(p string) {
			defer b.wg.Done()
			b.watch(ctx, p)
		}(path)
	}
	b.Logger.Infof("input", "watching %d evdev devices", len(paths))
	return nil
}

func (b *EvdevButtons) Stop() error {
	if b.cancel != nil {
		b.cancel()
	}
	b.wg.Wait()
	b.once.Do(func() { close(b.ch) })
	return nil
}

func (b *EvdevButtons) watch(ctx context.Context, path string) {
	// input_event = timeval + u16 type + u16 code + s32 value.
	tvSize := binary.Size(unix.Timeval{})

	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return
	}
	f := os.NewFile(uintptr(fd), path)
	defer f.Close()

	buf := make([]byte, 4096)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(pollFds, 250); err != nil {
			if err == unix.EINTR {
				continue
			}
			// Device might have gone away.
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return
		}
		for _, ev := range decodeEvents(buf[:n], tvSize, b.Keys) {
			b.Logger.Infof("input", "%s from %s", ev, path)
			select {
			case b.ch <- ev:
			case <-ctx.Done():
				return
			}
		}
	}
}
