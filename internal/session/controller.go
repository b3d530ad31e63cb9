// Package session owns the submission lifecycle of a journal entry: input,
// loading state, the stored reflection and the reveal that follows it.
package session

import (
	"time"

	"github.com/f3rmion/journal/internal/journal"
	"github.com/f3rmion/journal/internal/reveal"
	"go.uber.org/zap"
)

// Status is the submission state.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Request identifies one submitted entry. Seq increases with every submission.
type Request struct {
	Seq   uint64
	Entry string
}

// Start tells the driver when to deliver the first reveal step.
type Start struct {
	Gen   uint64
	Delay time.Duration
}

// Controller sequences idle → loading → success|error and hands the result
// to the reveal sequencer. It is not safe for concurrent use; the owning
// event loop is its only writer.
type Controller struct {
	seq    *reveal.Sequencer
	logger *zap.Logger

	entry   string
	status  Status
	loading bool
	result  *journal.Reflection
	err     error
	reqSeq  uint64
}

// New creates a controller that reveals results through seq.
func New(seq *reveal.Sequencer, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{seq: seq, logger: logger}
}

// SetEntry replaces the pending entry text.
func (c *Controller) SetEntry(text string) {
	c.entry = text
}

// Entry returns the pending entry text.
func (c *Controller) Entry() string {
	return c.entry
}

// Status returns the submission state.
func (c *Controller) Status() Status {
	return c.status
}

// Loading reports whether a request is in flight.
func (c *Controller) Loading() bool {
	return c.loading
}

// Result returns the stored reflection, or nil before the first response.
func (c *Controller) Result() *journal.Reflection {
	return c.result
}

// Err returns the error of the last settled request, if it failed.
func (c *Controller) Err() error {
	return c.err
}

// Seq returns the sequence number of the newest request.
func (c *Controller) Seq() uint64 {
	return c.reqSeq
}

// Sequencer returns the reveal sequencer driven by this controller.
func (c *Controller) Sequencer() *reveal.Sequencer {
	return c.seq
}

// Reveal returns the visible reveal state.
func (c *Controller) Reveal() reveal.State {
	return c.seq.State()
}

// Submit starts a submission of the pending entry. A blank entry is ignored
// and Submit returns false without changing any state.
func (c *Controller) Submit() (Request, bool) {
	entry := journal.NormalizeEntry(c.entry)
	if entry == "" {
		return Request{}, false
	}

	c.seq.Cancel()
	c.result = nil
	c.err = nil
	c.entry = ""
	c.loading = true
	c.status = StatusLoading
	c.reqSeq++

	c.logger.Debug("entry submitted", zap.Uint64("seq", c.reqSeq), zap.Int("entry_len", len(entry)))

	return Request{Seq: c.reqSeq, Entry: entry}, true
}

// Resolve settles the request seq with its outcome. Responses to anything
// but the newest request are stale and dropped; Resolve then returns false.
// A failure is replaced by the fallback reflection, which is revealed like
// any other result.
func (c *Controller) Resolve(seq uint64, res journal.Reflection, err error) (Start, bool) {
	if seq != c.reqSeq || !c.loading {
		c.logger.Debug("stale response dropped", zap.Uint64("seq", seq), zap.Uint64("current", c.reqSeq))
		return Start{}, false
	}

	c.loading = false
	if err != nil {
		c.logger.Error("reflection request failed", zap.Uint64("seq", seq), zap.Error(err))
		res = journal.Fallback()
		c.err = err
		c.status = StatusError
	} else {
		res = res.Clone()
		c.status = StatusSuccess
	}
	c.result = &res

	gen, delay := c.seq.Start(res)
	return Start{Gen: gen, Delay: delay}, true
}

// Advance forwards a reveal step for generation gen.
func (c *Controller) Advance(gen uint64) (time.Duration, bool) {
	return c.seq.Advance(gen)
}

// Reset drops the stored result and cancels any reveal in progress.
// An in-flight request is abandoned: its response will be treated as stale.
func (c *Controller) Reset() {
	c.seq.Cancel()
	c.result = nil
	c.err = nil
	if c.loading {
		c.reqSeq++
		c.loading = false
	}
	c.status = StatusIdle
}
