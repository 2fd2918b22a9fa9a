package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/zestagio/timeline/internal/clock"
	"github.com/zestagio/timeline/internal/config"
	internalerrors "github.com/zestagio/timeline/internal/errors"
	"github.com/zestagio/timeline/internal/logger"
	messagesrepo "github.com/zestagio/timeline/internal/repositories/messages"
	messagesbackend "github.com/zestagio/timeline/internal/repositories/messages/backend"
	postmessage "github.com/zestagio/timeline/internal/usecases/user/post-message"
)

var (
	configPath = flag.String("config", "configs/config.toml", "Path to config file")
	author     = flag.String("author", "", "Message author")
	text       = flag.String("text", "", "Message text")
	msgID      = flag.String("id", "", "Message ID, a new UUID if empty")
)

var errRejected = errors.New("message rejected")

func main() {
	flag.Parse()

	if err := run(os.Stdout); err != nil {
		if errors.Is(err, errRejected) {
			os.Exit(1)
		}
		log.Fatalf("run app: %v", err)
	}
}

func run(out io.Writer) (errReturned error) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.ParseAndValidate(*configPath)
	if err != nil {
		return fmt.Errorf("parse and validate config %q: %v", *configPath, err)
	}

	logger.MustInit(logger.NewOptions(cfg.Log.Level))
	defer logger.Sync()

	msgRepo, storage, err := messagesbackend.Open(ctx, cfg.Stores)
	if err != nil {
		return fmt.Errorf("open %s store: %v", cfg.Stores.Driver, err)
	}
	defer multierr.AppendInvoke(&errReturned, multierr.Close(storage))

	useCase, err := postmessage.New(postmessage.NewOptions(msgRepo, clock.System{}))
	if err != nil {
		return fmt.Errorf("create post message usecase: %v", err)
	}

	id := *msgID
	if id == "" {
		id = uuid.NewString()
	}

	return postMessage(ctx, out, useCase, msgRepo, postmessage.Request{
		ID:     id,
		Text:   *text,
		Author: *author,
	})
}

type postMessageUseCase interface {
	Handle(ctx context.Context, req postmessage.Request) error
}

type messageGetter interface {
	GetMessageByID(ctx context.Context, id string) (*messagesrepo.Message, error)
}

func postMessage(
	ctx context.Context,
	out io.Writer,
	useCase postMessageUseCase,
	msgRepo messageGetter,
	req postmessage.Request,
) error {
	if err := internalerrors.AdaptPostMessageError(useCase.Handle(ctx, req)); err != nil {
		code, msg, details := internalerrors.ProcessServerError(err)
		if code == http.StatusInternalServerError {
			return fmt.Errorf("post message: %s", details)
		}
		fmt.Fprintf(out, "%d %s\n", code, msg)
		return errRejected
	}

	msg, err := msgRepo.GetMessageByID(ctx, req.ID)
	if err != nil {
		return fmt.Errorf("get posted message: %v", err)
	}

	fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", msg.ID, msg.PublishedAt.Format(time.RFC3339), msg.Author, msg.Text)
	return nil
}
