package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/minhvu/wordvault/internal/screen"
)

type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	r := New(&stubScreen{title: "home"})

	s2 := &stubScreen{title: "study"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	if r.Active().Title() != "study" {
		t.Errorf("active = %q, want study", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("Init() did not run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Push(&stubScreen{title: "study"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("depth = %d, want 1", r.Depth())
	}
	if r.Active().Title() != "home" {
		t.Errorf("active = %q, want home", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("depth = %d after pop at bottom, want 1", r.Depth())
	}
}

func TestReplaceKeepsDepth(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Push(&stubScreen{title: "lookup"})

	s3 := &stubScreen{title: "study"}
	r.Replace(s3)

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	if r.Active().Title() != "study" {
		t.Errorf("active = %q, want study", r.Active().Title())
	}
	if !s3.initRan {
		t.Error("Init() did not run on replacement screen")
	}
}

func TestNavigationMessages(t *testing.T) {
	r := New(&stubScreen{title: "home"})

	r.Update(PushScreenMsg{Screen: &stubScreen{title: "browse"}})
	if r.Active().Title() != "browse" {
		t.Errorf("active = %q after push msg", r.Active().Title())
	}

	r.Update(ReplaceScreenMsg{Screen: &stubScreen{title: "study"}})
	if r.Active().Title() != "study" || r.Depth() != 2 {
		t.Errorf("active = %q depth = %d after replace msg", r.Active().Title(), r.Depth())
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "home" {
		t.Errorf("active = %q after pop msg", r.Active().Title())
	}
}
