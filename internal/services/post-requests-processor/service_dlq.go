package postrequestsprocessor

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/cenkalti/backoff"
	"github.com/segmentio/kafka-go"

	internalerrors "github.com/zestagio/timeline/internal/errors"
	"github.com/zestagio/timeline/internal/logger"
)

const dlqSubServiceName = serviceName + ".dlq"

//go:generate mockgen -source=$GOFILE -destination=mocks/dlq_writer_mock.gen.go -package=postrequestsprocessormocks

type KafkaDLQWriter interface {
	io.Closer
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

func NewKafkaDLQWriter(brokers []string, topic string) KafkaDLQWriter {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		BatchSize:    1,
		RequiredAcks: kafka.RequireOne,
		Async:        false,
		Logger:       logger.NewKafkaAdapted().WithServiceName(dlqSubServiceName),
		ErrorLogger:  logger.NewKafkaAdapted().WithServiceName(dlqSubServiceName).ForErrors(),
	}
}

func (s *Service) writeToDLQ(ctx context.Context, msg kafka.Message, lastErr error) error {
	code, errMsg, _ := internalerrors.ProcessServerError(internalerrors.AdaptPostMessageError(lastErr))

	headers := make([]kafka.Header, 0, len(msg.Headers)+4)
	headers = append(headers, msg.Headers...)
	headers = append(headers,
		kafka.Header{Key: "LAST_ERROR", Value: []byte(lastErr.Error())},
		kafka.Header{Key: "ERROR_CODE", Value: []byte(strconv.Itoa(code))},
		kafka.Header{Key: "ERROR_MESSAGE", Value: []byte(errMsg)},
		kafka.Header{Key: "ORIGINAL_PARTITION", Value: []byte(strconv.Itoa(msg.Partition))},
	)

	dlqMsg := kafka.Message{
		Key:     msg.Key,
		Value:   msg.Value,
		Headers: headers,
	}

	err := backoff.Retry(func() error {
		return s.dlqWriter.WriteMessages(ctx, dlqMsg)
	}, backoff.WithContext(s.newBackOff(), ctx))
	if err != nil {
		return fmt.Errorf("dlq: write msg: %v", err)
	}
	return nil
}
