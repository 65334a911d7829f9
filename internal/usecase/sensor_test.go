package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"CivicWatch/internal/domain"
)

func TestSensorPublishNotifiesInAttachOrder(t *testing.T) {
	t.Parallel()

	var calls []string
	sensor := NewSensor(nil)
	a := &recordingSubscriber{name: "a", log: &calls}
	b := &recordingSubscriber{name: "b", log: &calls}
	c := &recordingSubscriber{name: "c", log: &calls}
	sensor.Attach(a)
	sensor.Attach(b)
	sensor.Attach(c)

	require.NoError(t, sensor.Publish(42))
	require.NoError(t, sensor.Publish(7))

	require.Equal(t, []string{"a:42", "b:42", "c:42", "a:7", "b:7", "c:7"}, calls)
	require.Equal(t, []domain.Reading{42, 7}, a.got)

	current, ok := sensor.Current()
	require.True(t, ok)
	require.Equal(t, domain.Reading(7), current)
}

func TestSensorPublishWithoutSubscribers(t *testing.T) {
	t.Parallel()

	sensor := NewSensor(nil)
	_, ok := sensor.Current()
	require.False(t, ok)

	require.NoError(t, sensor.Publish(100))
	current, ok := sensor.Current()
	require.True(t, ok)
	require.Equal(t, domain.Reading(100), current)
}

func TestSensorAttachTwiceNotifiesTwice(t *testing.T) {
	t.Parallel()

	sensor := NewSensor(nil)
	sub := &recordingSubscriber{name: "dup"}
	sensor.Attach(sub)
	sensor.Attach(sub)

	require.NoError(t, sensor.Publish(5))
	require.Equal(t, []domain.Reading{5, 5}, sub.got)
	require.Equal(t, 2, sensor.Len())
}

func TestSensorDetachRemovesFirstMatch(t *testing.T) {
	t.Parallel()

	var calls []string
	sensor := NewSensor(nil)
	a := &recordingSubscriber{name: "a", log: &calls}
	b := &recordingSubscriber{name: "b", log: &calls}
	sensor.Attach(a)
	sensor.Attach(b)
	sensor.Attach(a)

	sensor.Detach(a)
	require.Equal(t, 2, sensor.Len())
	require.NoError(t, sensor.Publish(1))
	require.Equal(t, []string{"b:1", "a:1"}, calls)

	sensor.Detach(&recordingSubscriber{name: "stranger"})
	require.Equal(t, 2, sensor.Len())
}

func TestSensorPublishStopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	sensor := NewSensor(nil)
	first := &recordingSubscriber{name: "first"}
	broken := &recordingSubscriber{name: "broken", err: boom}
	last := &recordingSubscriber{name: "last"}
	sensor.Attach(first)
	sensor.Attach(broken)
	sensor.Attach(last)

	err := sensor.Publish(300)
	require.ErrorIs(t, err, boom)
	require.Len(t, first.got, 1)
	require.Len(t, broken.got, 1)
	require.Empty(t, last.got)

	current, _ := sensor.Current()
	require.Equal(t, domain.Reading(300), current)
}

type tallySubscriber struct {
	name string
	seen map[domain.Reading]bool
}

func (s tallySubscriber) Name() string { return s.name }

func (s tallySubscriber) Receive(reading domain.Reading) error {
	s.seen[reading] = true
	return nil
}

func TestSensorDetachUncomparableSubscriber(t *testing.T) {
	t.Parallel()

	sensor := NewSensor(nil)
	tally := tallySubscriber{name: "tally", seen: map[domain.Reading]bool{}}
	ptr := &recordingSubscriber{name: "ptr"}
	sensor.Attach(tally)
	sensor.Attach(ptr)

	require.NotPanics(t, func() {
		sensor.Detach(tallySubscriber{name: "tally", seen: map[domain.Reading]bool{}})
		sensor.Detach(tally)
	})
	require.Equal(t, 2, sensor.Len())

	sensor.Detach(ptr)
	require.Equal(t, 1, sensor.Len())

	require.NoError(t, sensor.Publish(9))
	require.True(t, tally.seen[9])
	require.Empty(t, ptr.got)
}
