package session

// advanceTickMsg fires after the transition delay of a deferred advance;
// the pointer move is applied when it arrives.
type advanceTickMsg struct{}

// noticeExpiredMsg clears the transient notice line.
type noticeExpiredMsg struct{}

// spokenMsg signals that a pronunciation command finished.
type spokenMsg struct{}
