package postmessage

import (
	"context"
	"fmt"
	"time"

	messagesrepo "github.com/zestagio/timeline/internal/repositories/messages"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/usecase_mock.gen.go -package=postmessagemocks

type messagesRepository interface {
	Save(ctx context.Context, msg messagesrepo.Message) error
}

type dateProvider interface {
	Now() time.Time
}

//go:generate options-gen -out-filename=usecase_options.gen.go -from-struct=Options
type Options struct {
	msgRepo      messagesRepository `option:"mandatory" validate:"required"`
	dateProvider dateProvider       `option:"mandatory" validate:"required"`
}

type UseCase struct {
	Options
}

func New(opts Options) (UseCase, error) {
	return UseCase{Options: opts}, opts.Validate()
}

func (u UseCase) Handle(ctx context.Context, req Request) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("validate request: %w", err)
	}

	msg := messagesrepo.Message{
		ID:          req.ID,
		Text:        req.Text,
		Author:      req.Author,
		PublishedAt: u.dateProvider.Now(),
	}

	if err := u.msgRepo.Save(ctx, msg); err != nil {
		return fmt.Errorf("save message: %w", err)
	}
	return nil
}
