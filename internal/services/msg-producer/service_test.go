package msgproducer_test

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	msgproducer "github.com/zestagio/timeline/internal/services/msg-producer"
)

func TestService_ProduceMessage(t *testing.T) {
	const messagesCount = 10

	cases := []struct {
		name string
		key  string
	}{
		{
			name: "plain",
			key:  "",
		},
		{
			name: "encrypted",
			key:  "24432646294A404E635266546A576E5A",
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange.
			writer := new(kafkaWriterMock)
			s, err := msgproducer.New(msgproducer.NewOptions(writer, msgproducer.WithEncryptKey(tt.key)))
			require.NoError(t, err)
			defer func() {
				require.NoError(t, s.Close())
				assert.True(t, writer.closed)
			}()

			publishedAt := time.Date(2023, 1, 19, 19, 0, 0, 0, time.UTC)
			msgs := make([]msgproducer.Message, 0, messagesCount)
			for i := 0; i < messagesCount; i++ {
				msgs = append(msgs, msgproducer.Message{
					ID:          fmt.Sprintf("message-%d", i),
					Text:        fmt.Sprintf("Message %d", i),
					Author:      []string{"Alice", "Bob", "Charlie"}[i%3],
					PublishedAt: publishedAt.Add(time.Duration(i) * time.Second),
				})
			}

			// Action.
			for i := 0; i < messagesCount; i++ {
				err = s.ProduceMessage(context.Background(), msgs[i])
				require.NoError(t, err, "i=%d", i)
			}
			require.Len(t, writer.msgs, messagesCount)

			// Assert.
			produced := make([]msgproducer.Message, 0, messagesCount)
			for _, m := range writer.msgs {
				data := m.Value
				if tt.key != "" {
					data = requireMsgDecrypt(t, tt.key, data)
				}

				msg := requireMsgUnmarshal(t, data)
				assert.Equal(t, []byte(msg.Author), m.Key)

				produced = append(produced, msg)
			}
			assert.Equal(t, msgs, produced)
		})
	}
}

func TestService_ProduceMessage_WriterError(t *testing.T) {
	writer := &kafkaWriterMock{err: errors.New("broker is down")}
	s, err := msgproducer.New(msgproducer.NewOptions(writer))
	require.NoError(t, err)

	err = s.ProduceMessage(context.Background(), msgproducer.Message{ID: "message-id", Author: "Alice"})
	require.Error(t, err)
}

func TestService_ProduceMessage_NonceError(t *testing.T) {
	writer := new(kafkaWriterMock)
	s, err := msgproducer.New(msgproducer.NewOptions(writer,
		msgproducer.WithEncryptKey("24432646294A404E635266546A576E5A"),
		msgproducer.WithNonceFactory(func(int) ([]byte, error) { return nil, errors.New("no entropy") }),
	))
	require.NoError(t, err)

	err = s.ProduceMessage(context.Background(), msgproducer.Message{ID: "message-id", Author: "Alice"})
	require.Error(t, err)
	assert.Empty(t, writer.msgs)
}

func TestNew_InvalidOptions(t *testing.T) {
	_, err := msgproducer.New(msgproducer.NewOptions(nil))
	require.Error(t, err)

	_, err = msgproducer.New(msgproducer.NewOptions(new(kafkaWriterMock), msgproducer.WithEncryptKey("not-a-hex")))
	require.Error(t, err)

	// Valid HEX, but not an AES key size.
	_, err = msgproducer.New(msgproducer.NewOptions(new(kafkaWriterMock), msgproducer.WithEncryptKey("abcd")))
	require.Error(t, err)
}

func requireMsgDecrypt(t *testing.T, keyStr string, data []byte) []byte {
	t.Helper()

	key, err := hex.DecodeString(keyStr)
	require.NoError(t, err)

	blockCipher, err := aes.NewCipher(key)
	require.NoError(t, err)

	aead, err := cipher.NewGCM(blockCipher)
	require.NoError(t, err)

	raw, ns := data, aead.NonceSize()
	nonce, encrypted := raw[:ns], raw[ns:]

	decrypted, err := aead.Open(nil, nonce, encrypted, nil)
	require.NoError(t, err)

	return decrypted
}

func requireMsgUnmarshal(t *testing.T, data []byte) msgproducer.Message {
	t.Helper()

	var rcvMsg struct {
		ID          string `json:"id"`
		Text        string `json:"text"`
		Author      string `json:"author"`
		PublishedAt string `json:"publishedAt"`
	}
	require.NoError(t, json.Unmarshal(data, &rcvMsg))

	publishedAt, err := time.Parse(time.RFC3339, rcvMsg.PublishedAt)
	require.NoError(t, err)

	return msgproducer.Message{
		ID:          rcvMsg.ID,
		Text:        rcvMsg.Text,
		Author:      rcvMsg.Author,
		PublishedAt: publishedAt,
	}
}

var _ msgproducer.KafkaWriter = (*kafkaWriterMock)(nil)

type kafkaWriterMock struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (m *kafkaWriterMock) Close() error {
	m.closed = true
	return nil
}

func (m *kafkaWriterMock) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if m.err != nil {
		return m.err
	}
	m.msgs = append(m.msgs, msgs...)
	return nil
}
