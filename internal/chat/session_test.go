package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSender struct {
	reply string
	err   error
}

func (f *fakeSender) Send(ctx context.Context, message string) (string, error) {
	return f.reply, f.err
}

type fakeRecorder struct {
	got []Message
}

func (f *fakeRecorder) Append(m Message) { f.got = append(f.got, m) }

// drain polls until the reply lands or the deadline passes.
func drain(t *testing.T, s *Session) {
	t.Helper()
	require.Eventually(t, s.Poll, time.Second, time.Millisecond)
}

func TestDisabledSessionIgnoresSend(t *testing.T) {
	s := NewSession(nil, nil, zap.NewNop())

	assert.False(t, s.Enabled())
	s.Send("hello?")
	assert.Empty(t, s.Messages())
	assert.False(t, s.Pending())
}

func TestSendAndPoll(t *testing.T) {
	rec := &fakeRecorder{}
	s := NewSession(&fakeSender{reply: "Meow! Hi!"}, rec, zap.NewNop())

	s.Send("hi neko")
	require.True(t, s.Pending())
	require.Len(t, s.Messages(), 1)
	assert.Equal(t, RoleUser, s.Messages()[0].Role)

	drain(t, s)

	require.Len(t, s.Messages(), 2)
	assert.Equal(t, RoleNeko, s.Messages()[1].Role)
	assert.Equal(t, "Meow! Hi!", s.Messages()[1].Text)
	assert.False(t, s.Pending())

	require.Len(t, rec.got, 2)
	assert.Equal(t, "hi neko", rec.got[0].Text)
	assert.Equal(t, "Meow! Hi!", rec.got[1].Text)
}

func TestAPIErrorBecomesCatMumble(t *testing.T) {
	s := NewSession(&fakeSender{err: errors.New("quota exceeded")}, nil, zap.NewNop())

	s.Send("are you there?")
	drain(t, s)

	require.Len(t, s.Messages(), 2)
	assert.Contains(t, s.Messages()[1].Text, "Meow... (Error:")
	assert.Contains(t, s.Messages()[1].Text, "quota exceeded")
	assert.False(t, s.Pending())
}

func TestEmptyInputIgnored(t *testing.T) {
	s := NewSession(&fakeSender{reply: "?"}, nil, zap.NewNop())

	s.Send("")
	assert.Empty(t, s.Messages())
	assert.False(t, s.Pending())
}

func TestOnlyOneRequestInFlight(t *testing.T) {
	s := NewSession(&fakeSender{reply: "purr"}, nil, zap.NewNop())

	s.Send("first")
	s.Send("second") // dropped: a request is already pending
	require.Len(t, s.Messages(), 1)

	drain(t, s)
	require.Len(t, s.Messages(), 2)
	assert.False(t, s.Pending())
}

func TestPollWithoutReply(t *testing.T) {
	s := NewSession(&fakeSender{reply: "x"}, nil, zap.NewNop())
	assert.False(t, s.Poll())
}
