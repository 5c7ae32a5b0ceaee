package notify

import (
	"sync"
	"time"
)

// DefaultDuration is how long a message stays visible unless superseded.
const DefaultDuration = 3 * time.Second

// Message is one ephemeral notification.
type Message struct {
	Text    string    `json:"text"`
	ShownAt time.Time `json:"shownAt"`
}

// Center is a process-wide single-slot notification channel. Showing a
// message while one is visible replaces it outright and preempts the
// pending auto-dismiss timer; there is no queue. Callers get no
// acknowledgment back.
type Center struct {
	mu       sync.Mutex
	current  *Message
	seq      uint64
	dismiss  *time.Timer
	duration time.Duration
	updates  chan Message
}

// New creates a notification center. A non-positive duration falls back
// to DefaultDuration.
func New(duration time.Duration) *Center {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Center{
		duration: duration,
		updates:  make(chan Message, 1),
	}
}

// Show displays a message, replacing any visible one. The message
// self-dismisses after the configured duration unless superseded
// earlier.
func (c *Center) Show(text string) {
	msg := Message{Text: text, ShownAt: time.Now()}

	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.current = &msg
	if c.dismiss != nil {
		c.dismiss.Stop()
	}
	c.dismiss = time.AfterFunc(c.duration, func() { c.clear(seq) })
	c.mu.Unlock()

	c.publish(msg)
}

// Current returns the visible message, if any.
func (c *Center) Current() (Message, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return Message{}, false
	}
	return *c.current, true
}

// Updates exposes the capacity-1 mailbox. A reader always observes the
// most recent message; intermediate ones may be dropped.
func (c *Center) Updates() <-chan Message {
	return c.updates
}

// clear dismisses the message, unless a newer one replaced it first.
func (c *Center) clear(seq uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.seq == seq {
		c.current = nil
	}
}

// publish delivers msg to the mailbox, displacing a pending one.
func (c *Center) publish(msg Message) {
	for {
		select {
		case c.updates <- msg:
			return
		default:
		}
		select {
		case <-c.updates:
		default:
		}
	}
}
