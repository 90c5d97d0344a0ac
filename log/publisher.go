package log

import "sync"

const defaultBufferSize = 64

// Publisher is an [io.Writer] that delivers a copy of every write to each
// active [Subscription].
//
// Delivery never blocks: a subscriber whose buffer is full loses its oldest
// pending entry. Safe for concurrent use.
//
// Create instances with [NewPublisher].
type Publisher struct {
	subs    map[*Subscription]struct{}
	bufSize int
	mu      sync.Mutex
	closed  bool
}

// PublisherOption configures a [Publisher].
type PublisherOption func(*Publisher)

// WithBufferSize sets the channel buffer size for new subscriptions.
// Values less than 1 are clamped to 1.
func WithBufferSize(n int) PublisherOption {
	return func(p *Publisher) {
		p.bufSize = max(1, n)
	}
}

// NewPublisher creates a [Publisher]. The default buffer size is 64.
func NewPublisher(opts ...PublisherOption) *Publisher {
	p := &Publisher{
		subs:    make(map[*Subscription]struct{}),
		bufSize: defaultBufferSize,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Write delivers a copy of b to every subscriber and always returns
// len(b), nil.
func (p *Publisher) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed || len(p.subs) == 0 {
		return len(b), nil
	}

	entry := append([]byte(nil), b...)

	for sub := range p.subs {
		select {
		case sub.ch <- entry:
		default:
			// Full: drop the oldest entry. Only Write sends, so the
			// second send cannot block.
			select {
			case <-sub.ch:
			default:
			}

			sub.ch <- entry
		}
	}

	return len(b), nil
}

// Subscribe registers a new [Subscription]. Subscribing to a closed
// Publisher returns a subscription whose channel is already closed.
func (p *Publisher) Subscribe() *Subscription {
	p.mu.Lock()
	defer p.mu.Unlock()

	sub := &Subscription{
		pub: p,
		ch:  make(chan []byte, p.bufSize),
	}

	if p.closed {
		sub.done = true
		close(sub.ch)

		return sub
	}

	p.subs[sub] = struct{}{}

	return sub
}

// Close closes every subscription. Later writes are discarded. Idempotent.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}

	p.closed = true

	for sub := range p.subs {
		sub.done = true
		close(sub.ch)
	}

	clear(p.subs)

	return nil
}

// Subscription receives entries written to a [Publisher].
type Subscription struct {
	pub  *Publisher
	ch   chan []byte
	done bool
}

// C returns the channel delivering entries. Entries already buffered remain
// readable after [Subscription.Close]; the channel is then closed.
// Callers must not modify the returned byte slices.
func (s *Subscription) C() <-chan []byte {
	return s.ch
}

// Close unregisters the subscription and closes its channel. Idempotent.
func (s *Subscription) Close() {
	s.pub.mu.Lock()
	defer s.pub.mu.Unlock()

	if s.done {
		return
	}

	s.done = true
	delete(s.pub.subs, s)
	close(s.ch)
}
