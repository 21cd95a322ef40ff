package notify

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"sync"
)

type Permission string

const (
	PermissionDefault Permission = "default"
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

// Notifier is the platform notification primitive.
type Notifier interface {
	Permission() Permission
	RequestPermission() Permission
	Show(title, body string) error
}

type NoopNotifier struct{}

func (NoopNotifier) Permission() Permission        { return PermissionDenied }
func (NoopNotifier) RequestPermission() Permission { return PermissionDenied }
func (NoopNotifier) Show(string, string) error     { return nil }

// DesktopNotifier shells out to notify-send on linux and osascript on darwin.
// Permission is granted once the helper binary resolves on PATH.
type DesktopNotifier struct {
	mu         sync.Mutex
	permission Permission
	lookPath   func(string) (string, error)
	run        func(name string, args ...string) error
}

func NewDesktopNotifier() *DesktopNotifier {
	return &DesktopNotifier{
		permission: PermissionDefault,
		lookPath:   exec.LookPath,
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
	}
}

func (d *DesktopNotifier) Permission() Permission {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.permission
}

func (d *DesktopNotifier) RequestPermission() Permission {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.permission != PermissionDefault {
		return d.permission
	}
	d.permission = PermissionDenied
	if bin := helperBinary(); bin != "" {
		if _, err := d.lookPath(bin); err == nil {
			d.permission = PermissionGranted
		}
	}
	return d.permission
}

func (d *DesktopNotifier) Show(title, body string) error {
	if d.Permission() != PermissionGranted {
		return nil
	}
	switch runtime.GOOS {
	case "linux":
		return d.run("notify-send", title, body)
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(body), escapeAppleScript(title))
		return d.run("osascript", "-e", script)
	default:
		return nil
	}
}

func helperBinary() string {
	switch runtime.GOOS {
	case "linux":
		return "notify-send"
	case "darwin":
		return "osascript"
	default:
		return ""
	}
}

func escapeAppleScript(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

type Message struct {
	Title string
	Body  string
}

// Recorder grants permission and keeps every message it is asked to show.
type Recorder struct {
	mu       sync.Mutex
	Denied   bool
	messages []Message
}

func (r *Recorder) Permission() Permission {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Denied {
		return PermissionDenied
	}
	return PermissionGranted
}

func (r *Recorder) RequestPermission() Permission { return r.Permission() }

func (r *Recorder) Show(title, body string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, Message{Title: title, Body: body})
	return nil
}

func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Message(nil), r.messages...)
}
