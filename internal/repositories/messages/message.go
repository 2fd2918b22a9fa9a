package messagesrepo

import (
	"time"
)

// Message is a validated post owned by the repository once saved.
type Message struct {
	ID          string
	Text        string
	Author      string
	PublishedAt time.Time
}
