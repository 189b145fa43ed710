package entity

import "time"

// ChatMessage is one entry in a scripted-chat transcript. IDs are monotonic
// within a session; a Typing message is a placeholder that is removed and
// replaced by a final bot message once the reply resolves.
type ChatMessage struct {
	ID        int
	Text      string
	IsBot     bool
	Timestamp time.Time
	Typing    bool
}
