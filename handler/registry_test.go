package handler

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaymq/eventflow/event"
)

func appendName(order *[]string, name string) Callback {
	return func(ctx context.Context, ev event.Event) error {
		*order = append(*order, name)
		return nil
	}
}

func TestRegistry_FanOutOrder(t *testing.T) {
	r := NewRegistry()

	var order []string
	r.All(appendName(&order, "wildcard"))
	r.Register("message", appendName(&order, "type"))
	r.Register("message.channels", appendName(&order, "compound"))

	require.NoError(t, r.HandleEvent(context.Background(), event.Event{
		"type":    "message",
		"subtype": "channels",
	}))

	// Wildcard first, then type, then type.subtype.
	assert.Equal(t, []string{"wildcard", "type", "compound"}, order)
}

func TestRegistry_RegistrationOrderWithinKey(t *testing.T) {
	r := NewRegistry()

	var order []string
	r.Register("app_mention", appendName(&order, "first"))
	r.Register("app_mention", appendName(&order, "second"))
	r.Register("app_mention", appendName(&order, "third"))

	require.NoError(t, r.HandleEvent(context.Background(), event.Event{"type": "app_mention"}))
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestRegistry_NoMatchIsNoop(t *testing.T) {
	r := NewRegistry()
	r.Register("app_mention", func(ctx context.Context, ev event.Event) error {
		t.Fatal("must not be called")
		return nil
	})

	assert.NoError(t, r.HandleEvent(context.Background(), event.Event{"type": "team_join"}))
}

func TestRegistry_CompoundNotConsultedWithoutSubtype(t *testing.T) {
	r := NewRegistry()

	var called bool
	r.Register("message.channels", func(ctx context.Context, ev event.Event) error {
		called = true
		return nil
	})

	require.NoError(t, r.HandleEvent(context.Background(), event.Event{"type": "message"}))
	assert.False(t, called)
}

func TestRegistry_FaultIsolation(t *testing.T) {
	r := NewRegistry()

	var order []string
	r.Register("message", func(ctx context.Context, ev event.Event) error {
		order = append(order, "failing")
		return errors.New("boom")
	})
	r.Register("message", func(ctx context.Context, ev event.Event) error {
		order = append(order, "panicking")
		panic("bad callback")
	})
	r.Register("message", appendName(&order, "surviving"))

	assert.NotPanics(t, func() {
		assert.NoError(t, r.HandleEvent(context.Background(), event.Event{"type": "message"}))
	})
	assert.Equal(t, []string{"failing", "panicking", "surviving"}, order)
}

func TestRegistry_InstanceIsolation(t *testing.T) {
	a := NewRegistry()
	b := NewRegistry()

	var calledA, calledB bool
	a.Register("message", func(ctx context.Context, ev event.Event) error {
		calledA = true
		return nil
	})
	b.Register("message", func(ctx context.Context, ev event.Event) error {
		calledB = true
		return nil
	})

	require.NoError(t, a.HandleEvent(context.Background(), event.Event{"type": "message"}))
	assert.True(t, calledA)
	assert.False(t, calledB)
}

func TestRegistry_CustomKeys(t *testing.T) {
	r := NewRegistry()

	var called bool
	r.Register("jira:issue_created", func(ctx context.Context, ev event.Event) error {
		called = true
		return nil
	})

	require.NoError(t, r.HandleEvent(context.Background(), event.Event{"type": "jira:issue_created"}))
	assert.True(t, called)
}

func TestRegistry_OnResolvesNames(t *testing.T) {
	r := NewRegistry()
	fn := func(ctx context.Context, ev event.Event) error { return nil }

	r.On("app_mention", fn)
	r.On("message_channels", fn)
	r.On("my_custom_event", fn)

	handlers := r.Handlers()
	assert.Len(t, handlers["app_mention"], 1)
	assert.Len(t, handlers["message.channels"], 1)
	assert.Len(t, handlers["my_custom_event"], 1)
	assert.NotContains(t, handlers, "message_channels")
}

func TestRegistry_TypedHelpers(t *testing.T) {
	r := NewRegistry()
	fn := func(ctx context.Context, ev event.Event) error { return nil }

	r.AppMention(fn)
	r.Message(fn)
	r.MessageChannels(fn)
	r.ReactionAdded(fn)

	handlers := r.Handlers()
	assert.Len(t, handlers[event.AppMention], 1)
	assert.Len(t, handlers[event.Message], 1)
	assert.Len(t, handlers[event.MessageChannels], 1)
	assert.Len(t, handlers[event.ReactionAdded], 1)
}

func TestRegistry_HandlersSnapshot(t *testing.T) {
	r := NewRegistry()
	r.Register("message", func(ctx context.Context, ev event.Event) error { return nil })

	handlers := r.Handlers()
	handlers["message"] = nil
	handlers["injected"] = []Callback{func(ctx context.Context, ev event.Event) error { return nil }}

	// Mutating the snapshot leaves the registry untouched.
	fresh := r.Handlers()
	assert.Len(t, fresh["message"], 1)
	assert.NotContains(t, fresh, "injected")
}

func TestRegistry_Clear(t *testing.T) {
	r := NewRegistry()
	r.All(func(ctx context.Context, ev event.Event) error {
		t.Fatal("must not be called after Clear")
		return nil
	})

	r.Clear()
	assert.Empty(t, r.Handlers())
	assert.NoError(t, r.HandleEvent(context.Background(), event.Event{"type": "message"}))
}

func TestRegistry_ConcurrentRegisterAndDispatch(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				r.Register("message", func(ctx context.Context, ev event.Event) error { return nil })
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = r.HandleEvent(context.Background(), event.Event{"type": "message"})
			}
		}()
	}
	wg.Wait()

	assert.Len(t, r.Handlers()["message"], 8*50)
}
