package chat

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const (
	RoleUser = "you"
	RoleNeko = "neko"
)

// requestTimeout bounds one round trip to the API.
const requestTimeout = 60 * time.Second

// Message is one transcript line.
type Message struct {
	Role string
	Text string
	Time time.Time
}

// Sender is the outbound side of the session. *Client implements it.
type Sender interface {
	Send(ctx context.Context, message string) (string, error)
}

// Recorder persists transcript lines. Append must not block the UI for long;
// errors are the recorder's problem to report.
type Recorder interface {
	Append(m Message)
}

// Session owns the transcript for the open chat popup. It is driven entirely
// from the UI tick: Send fires the API call on a goroutine and Poll drains
// the reply back on the next ticks, so no field needs locking.
type Session struct {
	sender   Sender
	recorder Recorder
	logger   *zap.Logger
	now      func() time.Time

	messages []Message
	pending  bool
	replies  chan string
}

func NewSession(sender Sender, recorder Recorder, logger *zap.Logger) *Session {
	return &Session{
		sender:   sender,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
		replies:  make(chan string, 1),
	}
}

// Enabled is false when no API client could be built (no key). The popup
// still opens but input stays inert.
func (s *Session) Enabled() bool { return s.sender != nil }

// Pending is true while a request is in flight.
func (s *Session) Pending() bool { return s.pending }

func (s *Session) Messages() []Message { return s.messages }

// Send appends the user line and fires the API call. Ignored while disabled,
// pending, or for empty input.
func (s *Session) Send(text string) {
	if !s.Enabled() || s.pending || text == "" {
		return
	}

	s.append(Message{Role: RoleUser, Text: text, Time: s.now()})
	s.pending = true
	s.logger.Debug("chat request", zap.Int("chars", len(text)))

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		reply, err := s.sender.Send(ctx, text)
		if err != nil {
			s.logger.Warn("chat request failed", zap.Error(err))
			reply = fmt.Sprintf("Meow... (Error: %v)", err)
		}
		s.replies <- reply
	}()
}

// Poll drains a finished reply into the transcript. Returns true when the
// transcript changed. Call every UI tick.
func (s *Session) Poll() bool {
	select {
	case reply := <-s.replies:
		s.append(Message{Role: RoleNeko, Text: reply, Time: s.now()})
		s.pending = false
		return true
	default:
		return false
	}
}

func (s *Session) append(m Message) {
	s.messages = append(s.messages, m)
	if s.recorder != nil {
		s.recorder.Append(m)
	}
}
