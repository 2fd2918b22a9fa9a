package badgermessagesrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	messagesrepo "github.com/zestagio/timeline/internal/repositories/messages"
)

type diskMessage struct {
	ID          string    `json:"id"`
	Text        string    `json:"text"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"publishedAt"`
}

func (r *Repo) Save(_ context.Context, msg messagesrepo.Message) error {
	data, err := json.Marshal(diskMessage{
		ID:          msg.ID,
		Text:        msg.Text,
		Author:      msg.Author,
		PublishedAt: msg.PublishedAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal message: %v", err)
	}

	key := messageKey(msg.ID)

	err = r.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		if err == nil {
			return fmt.Errorf("%w: id %q", messagesrepo.ErrMsgAlreadyExists, msg.ID)
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("get message: %v", err)
		}
		return txn.Set(key, data)
	})
	if errors.Is(err, badger.ErrConflict) {
		// A concurrent transaction wrote the same key first.
		return fmt.Errorf("%w: id %q", messagesrepo.ErrMsgAlreadyExists, msg.ID)
	}
	return err
}

func (r *Repo) GetMessageByID(_ context.Context, id string) (*messagesrepo.Message, error) {
	var dm diskMessage

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(messageKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &dm)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, messagesrepo.ErrMsgNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get message: %v", err)
	}

	return &messagesrepo.Message{
		ID:          dm.ID,
		Text:        dm.Text,
		Author:      dm.Author,
		PublishedAt: dm.PublishedAt,
	}, nil
}
