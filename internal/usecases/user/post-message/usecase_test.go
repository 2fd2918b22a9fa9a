package postmessage_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	messagesrepo "github.com/zestagio/timeline/internal/repositories/messages"
	"github.com/zestagio/timeline/internal/testingh"
	postmessage "github.com/zestagio/timeline/internal/usecases/user/post-message"
	postmessagemocks "github.com/zestagio/timeline/internal/usecases/user/post-message/mocks"
)

type UseCaseSuite struct {
	testingh.ContextSuite

	ctrl         *gomock.Controller
	msgRepo      *postmessagemocks.MockmessagesRepository
	dateProvider *postmessagemocks.MockdateProvider
	uCase        postmessage.UseCase
}

func TestUseCaseSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(UseCaseSuite))
}

func (s *UseCaseSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.msgRepo = postmessagemocks.NewMockmessagesRepository(s.ctrl)
	s.dateProvider = postmessagemocks.NewMockdateProvider(s.ctrl)

	var err error
	s.uCase, err = postmessage.New(postmessage.NewOptions(s.msgRepo, s.dateProvider))
	s.Require().NoError(err)

	s.ContextSuite.SetupTest()
}

func (s *UseCaseSuite) TearDownTest() {
	s.ctrl.Finish()

	s.ContextSuite.TearDownTest()
}

func (s *UseCaseSuite) TestNew_MissingCollaborators() {
	_, err := postmessage.New(postmessage.NewOptions(nil, s.dateProvider))
	s.Require().Error(err)

	_, err = postmessage.New(postmessage.NewOptions(s.msgRepo, nil))
	s.Require().Error(err)
}

func (s *UseCaseSuite) TestMessageTooLong() {
	// Arrange.
	req := postmessage.Request{
		ID:     "message-id",
		Text:   strings.Repeat("x", postmessage.MaxMessageLength+1),
		Author: "Alice",
	}

	// Action.
	err := s.uCase.Handle(s.Ctx, req)

	// Assert.
	s.Require().Error(err)
	s.ErrorIs(err, postmessage.ErrMessageTooLong)
}

func (s *UseCaseSuite) TestEmptyMessage() {
	for _, text := range []string{"", "    ", "\n\t"} {
		// Action.
		err := s.uCase.Handle(s.Ctx, postmessage.Request{
			ID:     "message-id",
			Text:   text,
			Author: "Alice",
		})

		// Assert.
		s.Require().Error(err)
		s.ErrorIs(err, postmessage.ErrEmptyMessage, "text=%q", text)
	}
}

func (s *UseCaseSuite) TestSaveError() {
	// Arrange.
	now := time.Date(2023, 1, 19, 19, 0, 0, 0, time.UTC)
	errUnexpected := errors.New("unexpected")

	s.dateProvider.EXPECT().Now().Return(now)
	s.msgRepo.EXPECT().Save(gomock.Any(), messagesrepo.Message{
		ID:          "message-id",
		Text:        "Hello World",
		Author:      "Alice",
		PublishedAt: now,
	}).Return(errUnexpected)

	// Action.
	err := s.uCase.Handle(s.Ctx, postmessage.Request{
		ID:     "message-id",
		Text:   "Hello World",
		Author: "Alice",
	})

	// Assert.
	s.Require().Error(err)
	s.ErrorIs(err, errUnexpected)
}

func (s *UseCaseSuite) TestAlreadyExists() {
	// Arrange.
	s.dateProvider.EXPECT().Now().Return(time.Now())
	s.msgRepo.EXPECT().Save(gomock.Any(), gomock.Any()).
		Return(messagesrepo.ErrMsgAlreadyExists)

	// Action.
	err := s.uCase.Handle(s.Ctx, postmessage.Request{
		ID:     "message-id",
		Text:   "Hello World",
		Author: "Alice",
	})

	// Assert.
	s.Require().Error(err)
	s.ErrorIs(err, messagesrepo.ErrMsgAlreadyExists)
}

func (s *UseCaseSuite) TestMessagePostedSuccessfully() {
	// Arrange.
	now := time.Date(2023, 1, 19, 19, 0, 0, 0, time.UTC)
	text := strings.Repeat("x", postmessage.MaxMessageLength)

	s.dateProvider.EXPECT().Now().Return(now)
	s.msgRepo.EXPECT().Save(gomock.Any(), messagesrepo.Message{
		ID:          "message-id",
		Text:        text,
		Author:      "Alice",
		PublishedAt: now,
	}).Return(nil)

	// Action.
	err := s.uCase.Handle(s.Ctx, postmessage.Request{
		ID:     "message-id",
		Text:   text,
		Author: "Alice",
	})

	// Assert.
	s.Require().NoError(err)
}
