package events_test

import (
	"context"
	"errors"
	"evdemand/pkg/domain"
	"evdemand/pkg/events"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

var mitte = domain.MustPostalCode("10115")

func TestBus_DispatchesByType(t *testing.T) {
	b := events.NewBus()

	var validated, all []string
	b.Subscribe(domain.EventPostalCodeValidated, func(_ context.Context, e domain.Event) error {
		validated = append(validated, e.EventType())

		return nil
	})
	b.SubscribeAll(func(_ context.Context, e domain.Event) error {
		all = append(all, e.EventType())

		return nil
	})

	err := b.Publish(context.Background(),
		domain.NewPostalCodeValidated(mitte),
		domain.NewNoStationsFound(mitte))
	require.NoError(t, err)

	require.Equal(t, []string{domain.EventPostalCodeValidated}, validated)
	require.Equal(t, []string{domain.EventPostalCodeValidated, domain.EventNoStationsFound}, all)
}

func TestBus_ErrorsDoNotStopOtherHandlers(t *testing.T) {
	b := events.NewBus()
	boom := errors.New("boom")

	calls := 0
	b.Subscribe(domain.EventNoStationsFound, func(context.Context, domain.Event) error {
		calls++

		return boom
	})
	b.Subscribe(domain.EventNoStationsFound, func(context.Context, domain.Event) error {
		calls++

		return nil
	})

	err := b.Publish(context.Background(), domain.NewNoStationsFound(mitte))
	require.ErrorIs(t, err, boom)
	require.Equal(t, 2, calls)
}

func TestBus_NoHandlers(t *testing.T) {
	require.NoError(t, events.NewBus().Publish(context.Background(), domain.NewNoStationsFound(mitte)))
}

func TestBus_ConcurrentUse(t *testing.T) {
	b := events.NewBus()

	var (
		mu    sync.Mutex
		count int
	)
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			b.SubscribeAll(func(context.Context, domain.Event) error {
				mu.Lock()
				count++
				mu.Unlock()

				return nil
			})
		}()
		go func() {
			defer wg.Done()
			_ = b.Publish(context.Background(), domain.NewPostalCodeValidated(mitte))
		}()
	}
	wg.Wait()

	count = 0
	require.NoError(t, b.Publish(context.Background(), domain.NewPostalCodeValidated(mitte)))
	require.Equal(t, 8, count)
}
