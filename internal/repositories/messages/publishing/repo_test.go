package publishingmessagesrepo_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	messagesrepo "github.com/zestagio/timeline/internal/repositories/messages"
	publishingmessagesrepo "github.com/zestagio/timeline/internal/repositories/messages/publishing"
	publishingmessagesrepomocks "github.com/zestagio/timeline/internal/repositories/messages/publishing/mocks"
	msgproducer "github.com/zestagio/timeline/internal/services/msg-producer"
	"github.com/zestagio/timeline/internal/testingh"
)

type RepoSuite struct {
	testingh.ContextSuite

	ctrl     *gomock.Controller
	msgRepo  *publishingmessagesrepomocks.MockmessagesRepository
	producer *publishingmessagesrepomocks.MockmessageProducer
	repo     *publishingmessagesrepo.Repo
}

func TestRepoSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RepoSuite))
}

func (s *RepoSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.msgRepo = publishingmessagesrepomocks.NewMockmessagesRepository(s.ctrl)
	s.producer = publishingmessagesrepomocks.NewMockmessageProducer(s.ctrl)

	var err error
	s.repo, err = publishingmessagesrepo.New(publishingmessagesrepo.NewOptions(s.msgRepo, s.producer))
	s.Require().NoError(err)

	s.ContextSuite.SetupTest()
}

func (s *RepoSuite) TearDownTest() {
	s.ctrl.Finish()

	s.ContextSuite.TearDownTest()
}

func (s *RepoSuite) TestSave_Published() {
	// Arrange.
	msg := messagesrepo.Message{
		ID:          "message-id",
		Text:        "Hello World",
		Author:      "Alice",
		PublishedAt: time.Date(2023, 1, 19, 19, 0, 0, 0, time.UTC),
	}

	gomock.InOrder(
		s.msgRepo.EXPECT().Save(gomock.Any(), msg).Return(nil),
		s.producer.EXPECT().ProduceMessage(gomock.Any(), msgproducer.Message{
			ID:          msg.ID,
			Text:        msg.Text,
			Author:      msg.Author,
			PublishedAt: msg.PublishedAt,
		}).Return(nil),
	)

	// Action.
	err := s.repo.Save(s.Ctx, msg)

	// Assert.
	s.Require().NoError(err)
}

func (s *RepoSuite) TestSave_SaveErrorIsNotPublished() {
	// Arrange.
	s.msgRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(messagesrepo.ErrMsgAlreadyExists)

	// Action.
	err := s.repo.Save(s.Ctx, messagesrepo.Message{ID: "message-id"})

	// Assert.
	s.Require().ErrorIs(err, messagesrepo.ErrMsgAlreadyExists)
	s.NotErrorIs(err, publishingmessagesrepo.ErrNotPublished)
}

func (s *RepoSuite) TestSave_ProduceError() {
	// Arrange.
	s.msgRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	s.producer.EXPECT().ProduceMessage(gomock.Any(), gomock.Any()).Return(errors.New("broker is down"))

	// Action.
	err := s.repo.Save(s.Ctx, messagesrepo.Message{ID: "message-id"})

	// Assert.
	s.Require().ErrorIs(err, publishingmessagesrepo.ErrNotPublished)
}

func (s *RepoSuite) TestGetMessageByID() {
	// Arrange.
	expected := &messagesrepo.Message{ID: "message-id", Text: "Hello World", Author: "Alice"}
	s.msgRepo.EXPECT().GetMessageByID(gomock.Any(), "message-id").Return(expected, nil)

	// Action.
	got, err := s.repo.GetMessageByID(s.Ctx, "message-id")

	// Assert.
	s.Require().NoError(err)
	s.Equal(expected, got)
}

func (s *RepoSuite) TestNew_MissingCollaborators() {
	_, err := publishingmessagesrepo.New(publishingmessagesrepo.NewOptions(nil, s.producer))
	s.Require().Error(err)

	_, err = publishingmessagesrepo.New(publishingmessagesrepo.NewOptions(s.msgRepo, nil))
	s.Require().Error(err)
}
