package messagesrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

func (r *Repo) Save(ctx context.Context, msg Message) error {
	const query = `INSERT INTO messages (id, text, author, published_at) VALUES ($1, $2, $3, $4)`

	if _, err := r.db.ExecContext(ctx, query, msg.ID, msg.Text, msg.Author, msg.PublishedAt.UTC()); err != nil {
		if r.db.IsUniqueViolation(err) {
			return fmt.Errorf("%w: id %q", ErrMsgAlreadyExists, msg.ID)
		}
		return fmt.Errorf("insert message: %v", err)
	}
	return nil
}

func (r *Repo) GetMessageByID(ctx context.Context, id string) (*Message, error) {
	const query = `SELECT id, text, author, published_at FROM messages WHERE id = $1`

	var m Message
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.Text, &m.Author, &m.PublishedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMsgNotFound
		}
		return nil, fmt.Errorf("select message: %v", err)
	}
	m.PublishedAt = m.PublishedAt.UTC()

	return &m, nil
}
