package messagesrepo

import "errors"

var (
	ErrMsgNotFound      = errors.New("message not found")
	ErrMsgAlreadyExists = errors.New("message already exists")
)
