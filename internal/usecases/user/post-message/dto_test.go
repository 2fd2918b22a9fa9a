package postmessage_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	postmessage "github.com/zestagio/timeline/internal/usecases/user/post-message"
)

func TestRequest_Validate(t *testing.T) {
	cases := []struct {
		name    string
		request postmessage.Request
		wantErr error
	}{
		// Positive.
		{
			name:    "valid request",
			request: postmessage.Request{ID: "message-id", Text: "Hello World", Author: "Alice"},
			wantErr: nil,
		},
		{
			name:    "text of max length",
			request: postmessage.Request{ID: "message-id", Text: strings.Repeat("x", 280), Author: "Alice"},
			wantErr: nil,
		},
		{
			name:    "multi-byte characters are counted once",
			request: postmessage.Request{ID: "message-id", Text: strings.Repeat("é", 280), Author: "Alice"},
			wantErr: nil,
		},
		{
			name:    "surrounding whitespaces are kept",
			request: postmessage.Request{ID: "message-id", Text: "  Hello  ", Author: "Alice"},
			wantErr: nil,
		},
		{
			name:    "separator control characters are not blank",
			request: postmessage.Request{ID: "message-id", Text: "\x1c", Author: "Alice"},
			wantErr: nil,
		},
		{
			name:    "several separator control characters are not blank",
			request: postmessage.Request{ID: "message-id", Text: "\x1f\x1e", Author: "Alice"},
			wantErr: nil,
		},
		{
			name:    "astral plane characters are counted once",
			request: postmessage.Request{ID: "message-id", Text: strings.Repeat("😀", 280), Author: "Alice"},
			wantErr: nil,
		},
		{
			name:    "empty id and author are passed through",
			request: postmessage.Request{Text: "Hello World"},
			wantErr: nil,
		},

		// Negative.
		{
			name:    "too long text",
			request: postmessage.Request{ID: "message-id", Text: strings.Repeat("x", 281), Author: "Alice"},
			wantErr: postmessage.ErrMessageTooLong,
		},
		{
			name:    "too long whitespace-only text",
			request: postmessage.Request{ID: "message-id", Text: strings.Repeat(" ", 281), Author: "Alice"},
			wantErr: postmessage.ErrMessageTooLong,
		},
		{
			name:    "too long astral plane text",
			request: postmessage.Request{ID: "message-id", Text: strings.Repeat("😀", 281), Author: "Alice"},
			wantErr: postmessage.ErrMessageTooLong,
		},
		{
			name:    "unicode whitespaces only",
			request: postmessage.Request{ID: "message-id", Text: "\u00a0\u3000\u2003", Author: "Alice"},
			wantErr: postmessage.ErrEmptyMessage,
		},
		{
			name:    "empty text",
			request: postmessage.Request{ID: "message-id", Text: "", Author: "Alice"},
			wantErr: postmessage.ErrEmptyMessage,
		},
		{
			name:    "whitespace-only text",
			request: postmessage.Request{ID: "message-id", Text: "    ", Author: "Alice"},
			wantErr: postmessage.ErrEmptyMessage,
		},
		{
			name:    "tabs and new lines only",
			request: postmessage.Request{ID: "message-id", Text: "\t\n\r\n", Author: "Alice"},
			wantErr: postmessage.ErrEmptyMessage,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
