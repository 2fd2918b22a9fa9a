package postrequestsprocessor

import (
	"errors"

	messagesrepo "github.com/zestagio/timeline/internal/repositories/messages"
	publishingmessagesrepo "github.com/zestagio/timeline/internal/repositories/messages/publishing"
	postmessage "github.com/zestagio/timeline/internal/usecases/user/post-message"
)

func isRejected(err error) bool {
	return errors.Is(err, postmessage.ErrMessageTooLong) ||
		errors.Is(err, postmessage.ErrEmptyMessage)
}

func isDuplicate(err error) bool {
	return errors.Is(err, messagesrepo.ErrMsgAlreadyExists)
}

func isNotPublished(err error) bool {
	return errors.Is(err, publishingmessagesrepo.ErrNotPublished)
}

// isRetriable reports whether another attempt could change the outcome.
func isRetriable(err error) bool {
	return !isRejected(err) && !isDuplicate(err) && !isNotPublished(err)
}
