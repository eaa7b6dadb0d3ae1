package loop_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/plus3/termtris/loop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Settings struct {
	Speed int
	Name  string
}

func TestResources(t *testing.T) {
	t.Run("add and read", func(t *testing.T) {
		resources := loop.NewResources()
		resources.Add(Settings{Speed: 3, Name: "fast"})

		var settings *Settings
		require.True(t, loop.Read(resources, &settings))
		assert.Equal(t, 3, settings.Speed)
		assert.Equal(t, 1, resources.Len())
	})

	t.Run("read missing", func(t *testing.T) {
		resources := loop.NewResources()
		var settings *Settings
		assert.False(t, loop.Read(resources, &settings))
		assert.Nil(t, settings)
	})

	t.Run("add replaces in place", func(t *testing.T) {
		resources := loop.NewResources()
		resources.Add(Settings{Speed: 1})
		singleton := loop.NewSingleton[Settings](resources)
		before := singleton.Get()

		resources.Add(Settings{Speed: 9})

		assert.Same(t, before, singleton.Get())
		assert.Equal(t, 9, singleton.Get().Speed)
	})

	t.Run("remove", func(t *testing.T) {
		resources := loop.NewResources()
		resources.Add(Settings{})
		resources.Remove(reflect.TypeFor[Settings]())

		singleton := &loop.Singleton[Settings]{}
		singleton.Init(resources)
		assert.False(t, singleton.Exists())
		assert.Nil(t, singleton.Get())
	})

	t.Run("types are sorted", func(t *testing.T) {
		resources := loop.NewResources()
		resources.Add(Settings{})
		resources.Add(Counter{})
		assert.Equal(t, []string{"loop_test.Counter", "loop_test.Settings"}, resources.Types())
	})

	t.Run("nil resource panics", func(t *testing.T) {
		assert.Panics(t, func() { loop.NewResources().Add(nil) })
	})
}

func TestSingletonLateResource(t *testing.T) {
	resources := loop.NewResources()
	singleton := &loop.Singleton[Settings]{}
	singleton.Init(resources)
	require.False(t, singleton.Exists())

	resources.Add(Settings{Name: "late"})

	require.True(t, singleton.Exists())
	assert.Equal(t, "late", singleton.Get().Name)
}

// ExampleNewSingleton shows that every accessor for a type shares one value.
func ExampleNewSingleton() {
	resources := loop.NewResources()

	settings := loop.NewSingleton[Settings](resources, Settings{Speed: 1, Name: "normal"})
	fmt.Printf("%s at speed %d\n", settings.Get().Name, settings.Get().Speed)

	settings.Get().Speed = 2

	same := loop.NewSingleton[Settings](resources, Settings{Speed: 100})
	fmt.Printf("second accessor sees speed %d\n", same.Get().Speed)

	// Output:
	// normal at speed 1
	// second accessor sees speed 2
}

type Score struct {
	Points int
}

type ScoreSystem struct {
	Score loop.Singleton[Score]
}

func (s *ScoreSystem) Execute(frame *loop.UpdateFrame) {
	s.Score.Get().Points += 10
	if s.Score.Get().Points >= 30 {
		frame.Commands.Stop("enough points")
	}
}

// ExampleScheduler runs a system until it asks the scheduler to stop.
func ExampleScheduler() {
	resources := loop.NewResources()
	loop.NewSingleton[Score](resources)

	scheduler := loop.NewScheduler(resources)
	scheduler.Register(&ScoreSystem{})

	for !scheduler.Once(1.0 / 60) {
	}

	var score *Score
	loop.Read(resources, &score)
	_, reason := scheduler.Stopped()
	fmt.Printf("%d points after %d frames: %s\n", score.Points, scheduler.GetStats().Frames, reason)

	// Output:
	// 30 points after 3 frames: enough points
}
