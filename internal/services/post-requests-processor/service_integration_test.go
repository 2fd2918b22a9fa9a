//go:build integration

package postrequestsprocessor_test

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/suite"

	"github.com/zestagio/timeline/internal/clock"
	"github.com/zestagio/timeline/internal/logger"
	inmemmessagesrepo "github.com/zestagio/timeline/internal/repositories/messages/in-mem"
	postrequestsprocessor "github.com/zestagio/timeline/internal/services/post-requests-processor"
	"github.com/zestagio/timeline/internal/testingh"
	postmessage "github.com/zestagio/timeline/internal/usecases/user/post-message"
)

type ServiceIntegrationSuite struct {
	testingh.KafkaSuite

	ConsumerGroup string

	requestsTopic    string
	dlqTopic         string
	requestsProducer *kafka.Writer
	dlqConsumer      *kafka.Reader

	msgRepo *inmemmessagesrepo.Repo
	svc     *postrequestsprocessor.Service
}

func TestServiceIntegrationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, &ServiceIntegrationSuite{ConsumerGroup: "TestServiceIntegrationSuite"})
}

func (s *ServiceIntegrationSuite) SetupTest() {
	const dlqSuffix = ".dlq"

	s.KafkaSuite.SetupTest()

	s.requestsTopic = fmt.Sprintf("%s.%d", "timeline.post-requests", time.Now().UnixMilli())
	s.dlqTopic = fmt.Sprintf("%s.%d", "timeline.post-requests.dlq", time.Now().UnixMilli())
	s.RecreateTopics(8, s.requestsTopic, s.dlqTopic)

	s.requestsProducer = &kafka.Writer{
		Addr:         kafka.TCP(s.KafkaBrokers()...),
		Topic:        s.requestsTopic,
		Balancer:     &kafka.CRC32Balancer{},
		BatchSize:    1,
		Async:        false,
		RequiredAcks: kafka.RequireOne,
		Logger:       logger.NewKafkaAdapted().WithServiceName(s.ConsumerGroup),
		ErrorLogger:  logger.NewKafkaAdapted().WithServiceName(s.ConsumerGroup).ForErrors(),
	}
	s.dlqConsumer = kafka.NewReader(kafka.ReaderConfig{
		Brokers:     s.KafkaBrokers(),
		Topic:       s.dlqTopic,
		GroupID:     s.ConsumerGroup + dlqSuffix,
		StartOffset: kafka.FirstOffset,
		Logger:      logger.NewKafkaAdapted().WithServiceName(s.ConsumerGroup + dlqSuffix),
		ErrorLogger: logger.NewKafkaAdapted().WithServiceName(s.ConsumerGroup + dlqSuffix).ForErrors(),
	})

	s.msgRepo = inmemmessagesrepo.New()
	useCase, err := postmessage.New(postmessage.NewOptions(s.msgRepo, clock.System{}))
	s.Require().NoError(err)

	s.svc, err = postrequestsprocessor.New(postrequestsprocessor.NewOptions(
		s.KafkaBrokers(),
		4,
		s.ConsumerGroup,
		s.requestsTopic,
		postrequestsprocessor.NewKafkaReader,
		postrequestsprocessor.NewKafkaDLQWriter(s.KafkaBrokers(), s.dlqTopic),
		useCase,
		postrequestsprocessor.WithProcessBatchSize(4),
	))
	s.Require().NoError(err)
}

func (s *ServiceIntegrationSuite) TearDownTest() {
	if p := s.requestsProducer; p != nil {
		s.NoError(p.Close())
	}
	if c := s.dlqConsumer; c != nil {
		s.NoError(c.Close())
	}
	s.KafkaSuite.TearDownTest()
}

func (s *ServiceIntegrationSuite) TestComplex() {
	// Arrange.
	const n = 120
	var expPosted, expRejected int

	messages := make([]kafka.Message, 0, n)
	for i := 0; i < n; i++ {
		text := fmt.Sprintf("message %d", i)
		switch {
		case i%2 == 0:
			expPosted++
		case i%3 == 0:
			text = strings.Repeat("x", postmessage.MaxMessageLength+1)
			expRejected++
		default:
			text = "  "
			expRejected++
		}

		data, err := json.Marshal(map[string]string{
			"id":     fmt.Sprintf("msg-%d", i),
			"text":   text,
			"author": fmt.Sprintf("author-%d", i%7),
		})
		s.Require().NoError(err)

		messages = append(messages, kafka.Message{
			Key:   []byte(fmt.Sprintf("author-%d", i%7)),
			Value: data,
		})
	}

	// Action.
	cancel, errCh := s.runProcessor()
	defer cancel()

	err := s.requestsProducer.WriteMessages(s.Ctx, messages...)
	s.Require().NoError(err)

	// Assert.
	for i := 0; i < expRejected; i++ {
		func() {
			ctx, cancel := context.WithTimeout(s.Ctx, 3*time.Second)
			defer cancel()

			msg, err := s.dlqConsumer.ReadMessage(ctx)
			s.Require().NoErrorf(err, "no expected %dth message in dlq topic", i)
			s.assertContainsHeader(msg.Headers, "LAST_ERROR")
			s.assertContainsHeader(msg.Headers, "ERROR_CODE")
			s.assertContainsHeader(msg.Headers, "ERROR_MESSAGE")
			s.assertContainsHeader(msg.Headers, "ORIGINAL_PARTITION")
		}()
	}

	time.Sleep(time.Second) // For the last messages processing.

	s.Equal(expPosted, s.msgRepo.Count())
	s.Equal(int64(expPosted), s.svc.Stats().Processed)
	s.Equal(int64(expRejected), s.svc.Stats().Rejected)

	cancel()
	s.Require().NoError(<-errCh)
}

func (s *ServiceIntegrationSuite) runProcessor() (context.CancelFunc, <-chan error) {
	s.T().Helper()

	ctx, cancel := context.WithCancel(s.Ctx)

	errCh := make(chan error)
	go func() { errCh <- s.svc.Run(ctx) }()

	// Waiting for rebalance.
	time.Sleep(2 * time.Second)

	return cancel, errCh
}

func (s *ServiceIntegrationSuite) assertContainsHeader(headers []kafka.Header, key string) {
	s.T().Helper()

	for _, h := range headers {
		if h.Key == key {
			s.NotEmpty(string(h.Value), "header=%s", key)
			return
		}
	}
	s.Failf("kafka header %s not found", key)
}
