package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestManualAdvanceFiresDueTimers(t *testing.T) {
	c := NewManual(epoch)
	fired := 0
	c.AfterFunc(100*time.Millisecond, func() { fired++ })

	c.Advance(99 * time.Millisecond)
	assert.Equal(t, 0, fired, "timer fired early")

	c.Advance(1 * time.Millisecond)
	assert.Equal(t, 1, fired)
	assert.Equal(t, epoch.Add(100*time.Millisecond), c.Now())

	c.Advance(time.Second)
	assert.Equal(t, 1, fired, "timer must fire once")
}

func TestManualFiresInDeadlineOrder(t *testing.T) {
	c := NewManual(epoch)
	var order []string
	c.AfterFunc(30*time.Millisecond, func() { order = append(order, "c") })
	c.AfterFunc(10*time.Millisecond, func() { order = append(order, "a") })
	c.AfterFunc(20*time.Millisecond, func() { order = append(order, "b") })
	c.AfterFunc(20*time.Millisecond, func() { order = append(order, "b2") })

	c.Advance(time.Second)
	assert.Equal(t, []string{"a", "b", "b2", "c"}, order)
}

func TestManualCallbackSeesDeadlineAsNow(t *testing.T) {
	c := NewManual(epoch)
	var seen time.Time
	c.AfterFunc(40*time.Millisecond, func() { seen = c.Now() })

	c.Advance(time.Second)
	assert.Equal(t, epoch.Add(40*time.Millisecond), seen)
	assert.Equal(t, epoch.Add(time.Second), c.Now())
}

func TestManualStop(t *testing.T) {
	c := NewManual(epoch)
	fired := false
	timer := c.AfterFunc(10*time.Millisecond, func() { fired = true })

	require.True(t, timer.Stop())
	assert.False(t, timer.Stop(), "second Stop should report false")
	assert.Equal(t, 0, c.Pending())

	c.Advance(time.Second)
	assert.False(t, fired)
}

func TestManualStopAfterFire(t *testing.T) {
	c := NewManual(epoch)
	timer := c.AfterFunc(10*time.Millisecond, func() {})
	c.Advance(10 * time.Millisecond)
	assert.False(t, timer.Stop())
}

func TestManualTimerScheduledFromCallback(t *testing.T) {
	c := NewManual(epoch)
	count := 0
	var rearm func()
	rearm = func() {
		count++
		if count < 3 {
			c.AfterFunc(10*time.Millisecond, rearm)
		}
	}
	c.AfterFunc(10*time.Millisecond, rearm)

	c.Advance(25 * time.Millisecond)
	assert.Equal(t, 2, count)

	c.Advance(5 * time.Millisecond)
	assert.Equal(t, 3, count)
}
