package postrequestsprocessor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/segmentio/kafka-go"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	internalerrors "github.com/zestagio/timeline/internal/errors"
	postmessage "github.com/zestagio/timeline/internal/usecases/user/post-message"
)

const serviceName = "post-requests-processor"

//go:generate mockgen -source=$GOFILE -destination=mocks/service_mock.gen.go -package=postrequestsprocessormocks

type postMessageUseCase interface {
	Handle(ctx context.Context, req postmessage.Request) error
}

//go:generate options-gen -out-filename=service_options.gen.go -from-struct=Options
type Options struct {
	backoffInitialInterval time.Duration `default:"100ms" validate:"min=50ms,max=1s"`
	backoffMaxElapsedTime  time.Duration `default:"5s" validate:"min=500ms,max=1m"`

	expFactor float64 `default:"2.71828" validate:"min=1.5,max=5.0"`
	expJitter float64 `default:"0.1" validate:"min=0.1,max=1.0"`

	brokers          []string `option:"mandatory" validate:"min=1"`
	consumers        int      `option:"mandatory" validate:"min=1,max=16"`
	consumerGroup    string   `option:"mandatory" validate:"required"`
	requestsTopic    string   `option:"mandatory" validate:"required"`
	processBatchSize int      `default:"1" validate:"min=1"`

	readerFactory KafkaReaderFactory `option:"mandatory" validate:"required"`
	dlqWriter     KafkaDLQWriter     `option:"mandatory" validate:"required"`

	useCase postMessageUseCase `option:"mandatory" validate:"required"`
}

// Stats are the totals of handled requests since the service start.
type Stats struct {
	Processed int64
	Rejected  int64
	Skipped   int64
}

type Service struct {
	Options

	lg *zap.Logger

	processed atomic.Int64
	rejected  atomic.Int64
	skipped   atomic.Int64
}

func New(opts Options) (*Service, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}

	return &Service{
		Options: opts,
		lg:      zap.L().Named(serviceName),
	}, nil
}

func (s *Service) Stats() Stats {
	return Stats{
		Processed: s.processed.Load(),
		Rejected:  s.rejected.Load(),
		Skipped:   s.skipped.Load(),
	}
}

func (s *Service) Run(ctx context.Context) (errReturned error) {
	defer multierr.AppendInvoke(&errReturned, multierr.Close(s.dlqWriter))
	defer func() {
		st := s.Stats()
		s.lg.Info("stopped",
			zap.Int64("processed", st.Processed),
			zap.Int64("rejected", st.Rejected),
			zap.Int64("skipped", st.Skipped),
		)
	}()

	eg, ctx := errgroup.WithContext(ctx)
	for i := 0; i < s.consumers; i++ {
		eg.Go(func() error { return s.consume(ctx) })
	}

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (s *Service) consume(ctx context.Context) (errReturned error) {
	reader := s.readerFactory(s.brokers, s.consumerGroup, s.requestsTopic)
	defer multierr.AppendInvoke(&errReturned, multierr.Close(reader))

	msgs := make([]kafka.Message, 0, s.processBatchSize)

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		msg, err := reader.FetchMessage(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("fetch message: %w", err)
		}

		if err := s.handleMsg(ctx, msg); err != nil {
			s.lg.Error("handle message", zap.Error(err))
			return err
		}

		msgs = append(msgs, msg)

		if len(msgs) == s.processBatchSize {
			if err := reader.CommitMessages(ctx, msgs...); err != nil {
				return fmt.Errorf("commit messages: %w", err)
			}

			msgs = msgs[:0]
		}
	}
}

func (s *Service) handleMsg(ctx context.Context, msg kafka.Message) error {
	var req postRequest
	if err := json.Unmarshal(msg.Value, &req); err != nil {
		s.rejected.Inc()
		return s.writeToDLQ(ctx, msg,
			internalerrors.NewServerError(http.StatusBadRequest, "invalid request", fmt.Errorf("decode request: %v", err)))
	}

	err := s.handleWithBackoff(ctx, req.toUseCase())
	switch {
	case err == nil:
		s.processed.Inc()

	case isRejected(err):
		s.rejected.Inc()
		return s.writeToDLQ(ctx, msg, err)

	case isDuplicate(err):
		s.skipped.Inc()
		s.lg.Debug("message already exists", zap.String("msg_id", req.ID))

	case isNotPublished(err):
		s.processed.Inc()
		s.lg.Warn("message saved but not published", zap.String("msg_id", req.ID), zap.Error(err))

	default:
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("post message %q: %w", req.ID, err)
	}

	return nil
}

func (s *Service) handleWithBackoff(ctx context.Context, req postmessage.Request) error {
	return backoff.Retry(func() error {
		err := s.useCase.Handle(ctx, req)
		if err != nil && !isRetriable(err) {
			return backoff.Permanent(err)
		}
		return err
	}, backoff.WithContext(s.newBackOff(), ctx))
}

func (s *Service) newBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.backoffInitialInterval
	b.MaxElapsedTime = s.backoffMaxElapsedTime
	b.Multiplier = s.expFactor
	b.RandomizationFactor = s.expJitter
	return b
}
