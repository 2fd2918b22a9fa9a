package errors

import (
	"errors"
	"net/http"

	messagesrepo "github.com/zestagio/timeline/internal/repositories/messages"
	postmessage "github.com/zestagio/timeline/internal/usecases/user/post-message"
)

// AdaptPostMessageError turns post message rejections into server errors.
// Other errors are returned as is.
func AdaptPostMessageError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, postmessage.ErrMessageTooLong):
		return NewServerError(http.StatusRequestEntityTooLarge, "message too long", err)
	case errors.Is(err, postmessage.ErrEmptyMessage):
		return NewServerError(http.StatusBadRequest, "message is empty", err)
	case errors.Is(err, messagesrepo.ErrMsgAlreadyExists):
		return NewServerError(http.StatusConflict, "message already exists", err)
	}
	return err
}
