package notify

import (
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDesktopNotifierDeniedWithoutHelper(t *testing.T) {
	d := NewDesktopNotifier()
	d.lookPath = func(string) (string, error) { return "", errors.New("not found") }
	calls := 0
	d.run = func(string, ...string) error {
		calls++
		return nil
	}

	assert.Equal(t, PermissionDefault, d.Permission())
	assert.Equal(t, PermissionDenied, d.RequestPermission())
	require.NoError(t, d.Show("title", "body"))
	assert.Zero(t, calls, "denied notifier must not shell out")
}

func TestDesktopNotifierShowsWhenGranted(t *testing.T) {
	if runtime.GOOS != "linux" && runtime.GOOS != "darwin" {
		t.Skip("desktop helper only on linux and darwin")
	}
	d := NewDesktopNotifier()
	d.lookPath = func(name string) (string, error) { return "/usr/bin/" + name, nil }
	var got []string
	d.run = func(name string, args ...string) error {
		got = append([]string{name}, args...)
		return nil
	}

	require.Equal(t, PermissionGranted, d.RequestPermission())
	require.NoError(t, d.Show("Task Starting!", `Gym "A" is starting now.`))
	require.NotEmpty(t, got)
	if runtime.GOOS == "linux" {
		assert.Equal(t, []string{"notify-send", "Task Starting!", `Gym "A" is starting now.`}, got)
	} else {
		assert.Contains(t, got[2], `Gym \"A\" is starting now.`)
	}
}

func TestRecorderHonoursDenied(t *testing.T) {
	r := &Recorder{Denied: true}
	assert.Equal(t, PermissionDenied, r.RequestPermission())
	r.Denied = false
	assert.Equal(t, PermissionGranted, r.Permission())
	require.NoError(t, r.Show("a", "b"))
	assert.Equal(t, []Message{{Title: "a", Body: "b"}}, r.Messages())
}

func TestNoopNotifier(t *testing.T) {
	var n Notifier = NoopNotifier{}
	assert.Equal(t, PermissionDenied, n.RequestPermission())
	assert.NoError(t, n.Show("x", "y"))
}
