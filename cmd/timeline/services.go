package main

import (
	"fmt"

	"github.com/zestagio/timeline/internal/config"
	messagesbackend "github.com/zestagio/timeline/internal/repositories/messages/backend"
	publishingmessagesrepo "github.com/zestagio/timeline/internal/repositories/messages/publishing"
	msgproducer "github.com/zestagio/timeline/internal/services/msg-producer"
	postrequestsprocessor "github.com/zestagio/timeline/internal/services/post-requests-processor"
	postmessage "github.com/zestagio/timeline/internal/usecases/user/post-message"
)

const defaultProducerBatchSize = 1

func initPublishingRepo(
	cfg config.MsgProducerConfig,
	msgRepo messagesbackend.Repository,
) (*publishingmessagesrepo.Repo, *msgproducer.Service, error) {
	batchSize := cfg.BatchSize
	if batchSize == 0 {
		batchSize = defaultProducerBatchSize
	}

	producer, err := msgproducer.New(msgproducer.NewOptions(
		msgproducer.NewKafkaWriter(cfg.Brokers, cfg.Topic, batchSize),
		msgproducer.WithEncryptKey(cfg.EncryptKey),
	))
	if err != nil {
		return nil, nil, fmt.Errorf("create msg producer: %v", err)
	}

	repo, err := publishingmessagesrepo.New(publishingmessagesrepo.NewOptions(msgRepo, producer))
	if err != nil {
		return nil, nil, fmt.Errorf("create publishing repo: %v", err)
	}
	return repo, producer, nil
}

func initPostRequestsProcessor(
	cfg config.PostRequestsProcessorConfig,
	useCase postmessage.UseCase,
) (*postrequestsprocessor.Service, error) {
	opts := []postrequestsprocessor.OptOptionsSetter{}
	if cfg.BatchSize != 0 {
		opts = append(opts, postrequestsprocessor.WithProcessBatchSize(cfg.BatchSize))
	}
	if cfg.BackoffInitialInterval != 0 {
		opts = append(opts, postrequestsprocessor.WithBackoffInitialInterval(cfg.BackoffInitialInterval))
	}
	if cfg.BackoffMaxElapsedTime != 0 {
		opts = append(opts, postrequestsprocessor.WithBackoffMaxElapsedTime(cfg.BackoffMaxElapsedTime))
	}

	svc, err := postrequestsprocessor.New(postrequestsprocessor.NewOptions(
		cfg.Brokers,
		cfg.Consumers,
		cfg.ConsumerGroup,
		cfg.RequestsTopic,
		postrequestsprocessor.NewKafkaReader,
		postrequestsprocessor.NewKafkaDLQWriter(cfg.Brokers, cfg.DLQTopic),
		useCase,
		opts...,
	))
	if err != nil {
		return nil, fmt.Errorf("create processor: %v", err)
	}
	return svc, nil
}
