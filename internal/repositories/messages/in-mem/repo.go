package inmemmessagesrepo

import (
	"context"
	"fmt"
	"sync"

	messagesrepo "github.com/zestagio/timeline/internal/repositories/messages"
)

// Repo keeps messages in process memory. It is safe for concurrent use.
type Repo struct {
	mu   sync.RWMutex
	msgs map[string]messagesrepo.Message
}

func New() *Repo {
	return &Repo{msgs: make(map[string]messagesrepo.Message)}
}

func (r *Repo) Save(_ context.Context, msg messagesrepo.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.msgs[msg.ID]; ok {
		return fmt.Errorf("%w: id %q", messagesrepo.ErrMsgAlreadyExists, msg.ID)
	}
	r.msgs[msg.ID] = msg
	return nil
}

func (r *Repo) GetMessageByID(_ context.Context, id string) (*messagesrepo.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	msg, ok := r.msgs[id]
	if !ok {
		return nil, messagesrepo.ErrMsgNotFound
	}
	return &msg, nil
}

func (r *Repo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.msgs)
}
