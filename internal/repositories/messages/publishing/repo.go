package publishingmessagesrepo

import (
	"context"
	"errors"
	"fmt"

	messagesrepo "github.com/zestagio/timeline/internal/repositories/messages"
	msgproducer "github.com/zestagio/timeline/internal/services/msg-producer"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/repo_mock.gen.go -package=publishingmessagesrepomocks

// ErrNotPublished means the message was saved but the event was not produced.
var ErrNotPublished = errors.New("message saved but not published")

type messagesRepository interface {
	Save(ctx context.Context, msg messagesrepo.Message) error
	GetMessageByID(ctx context.Context, id string) (*messagesrepo.Message, error)
}

type messageProducer interface {
	ProduceMessage(ctx context.Context, msg msgproducer.Message) error
}

//go:generate options-gen -out-filename=repo_options.gen.go -from-struct=Options
type Options struct {
	msgRepo  messagesRepository `option:"mandatory" validate:"required"`
	producer messageProducer    `option:"mandatory" validate:"required"`
}

// Repo publishes every saved message.
type Repo struct {
	Options
}

func New(opts Options) (*Repo, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}
	return &Repo{Options: opts}, nil
}

func (r *Repo) Save(ctx context.Context, msg messagesrepo.Message) error {
	if err := r.msgRepo.Save(ctx, msg); err != nil {
		return err
	}

	if err := r.producer.ProduceMessage(ctx, msgproducer.Message{
		ID:          msg.ID,
		Text:        msg.Text,
		Author:      msg.Author,
		PublishedAt: msg.PublishedAt,
	}); err != nil {
		return fmt.Errorf("%w: %v", ErrNotPublished, err)
	}
	return nil
}

func (r *Repo) GetMessageByID(ctx context.Context, id string) (*messagesrepo.Message, error) {
	return r.msgRepo.GetMessageByID(ctx, id)
}
