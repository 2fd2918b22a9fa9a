package msgproducer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// Message is the "message posted" event.
type Message struct {
	ID          string    `json:"id"`
	Text        string    `json:"text"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"publishedAt"`
}

func (s *Service) ProduceMessage(ctx context.Context, msg Message) error {
	var sendMessage []byte

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("json marshal error: %v", err)
	}

	if s.cipher != nil {
		nonce, err := s.nonceFactory(s.cipher.NonceSize())
		if err != nil {
			return fmt.Errorf("create nonce error: %v", err)
		}

		sendMessage = s.cipher.Seal(nonce, nonce, data, nil)
	} else {
		sendMessage = data
	}

	// Events of one author stay ordered within a partition.
	if err := s.wr.WriteMessages(ctx, kafka.Message{Key: []byte(msg.Author), Value: sendMessage}); err != nil {
		return fmt.Errorf("produce message error: %v", err)
	}

	return nil
}

func (s *Service) Close() error {
	return s.wr.Close()
}
