package postrequestsprocessor

import postmessage "github.com/zestagio/timeline/internal/usecases/user/post-message"

// postRequest is the JSON payload of the requests topic.
type postRequest struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Author string `json:"author"`
}

func (r postRequest) toUseCase() postmessage.Request {
	return postmessage.Request{
		ID:     r.ID,
		Text:   r.Text,
		Author: r.Author,
	}
}
