package view

import (
	"sync"
	"time"
)

// DefaultNotifyDelay is how long a banner stays visible.
const DefaultNotifyDelay = 5 * time.Second

// Banner is a Notifier whose messages dismiss themselves after a delay.
type Banner struct {
	delay    time.Duration
	onChange func([]string)

	mu     sync.Mutex
	nextID int
	active []bannerEntry
}

type bannerEntry struct {
	id      int
	message string
}

// NewBanner returns a Banner. onChange, when set, receives the visible messages
// after every show and dismiss.
func NewBanner(delay time.Duration, onChange func([]string)) *Banner {
	if delay <= 0 {
		delay = DefaultNotifyDelay
	}
	return &Banner{delay: delay, onChange: onChange}
}

// Notify shows message and schedules its dismissal.
func (b *Banner) Notify(message string) {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.active = append(b.active, bannerEntry{id: id, message: message})
	visible := b.visibleLocked()
	b.mu.Unlock()

	b.changed(visible)
	time.AfterFunc(b.delay, func() { b.dismiss(id) })
}

// Visible returns the messages currently shown, oldest first.
func (b *Banner) Visible() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.visibleLocked()
}

func (b *Banner) dismiss(id int) {
	b.mu.Lock()
	for i, e := range b.active {
		if e.id == id {
			b.active = append(b.active[:i], b.active[i+1:]...)
			break
		}
	}
	visible := b.visibleLocked()
	b.mu.Unlock()

	b.changed(visible)
}

func (b *Banner) visibleLocked() []string {
	out := make([]string, 0, len(b.active))
	for _, e := range b.active {
		out = append(out, e.message)
	}
	return out
}

func (b *Banner) changed(visible []string) {
	if b.onChange != nil {
		b.onChange(visible)
	}
}
