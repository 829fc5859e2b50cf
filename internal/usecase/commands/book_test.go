//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"library-api/internal/infra"
	"library-api/internal/pkg/errs"
	"library-api/internal/usecase/commands"
	"library-api/tests/common/builder"
	commandsmock "library-api/tests/mock/commands"
	queriesmock "library-api/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookCommandsTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockRepo  *commandsmock.MockBookRepository
	mockReads *queriesmock.MockBookReadStore
	commands  commands.BookCommands
}

func (s *BookCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = commandsmock.NewMockBookRepository(s.mockCtrl)
	s.mockReads = queriesmock.NewMockBookReadStore(s.mockCtrl)
	s.commands = commands.NewBookCommands(s.mockRepo, s.mockReads)
}

func (s *BookCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookCommandsTestSuite))
}

func (s *BookCommandsTestSuite) TestCreate() {
	ctx := context.Background()

	s.Run("success: stores the book and returns its view", func() {
		b := builder.NewBookBuilder()
		expected := b.BuildView()

		s.mockRepo.EXPECT().ExistsByISBN(gomock.Any(), b.ISBN).Return(false, nil)
		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(expected, nil)

		view, err := s.commands.Create(ctx, b.BuildCreateParams())
		s.NoError(err)
		s.Equal(expected, view)
	})

	s.Run("error: duplicate isbn leaves the store untouched", func() {
		b := builder.NewBookBuilder()

		s.mockRepo.EXPECT().ExistsByISBN(gomock.Any(), b.ISBN).Return(true, nil)
		// no Create expectation: the write must not happen

		view, err := s.commands.Create(ctx, b.BuildCreateParams())
		s.ErrorIs(err, errs.ErrDuplicateISBN)
		s.Nil(view)
	})

	s.Run("error: unique-key race surfaces as duplicate isbn", func() {
		b := builder.NewBookBuilder()
		dupErr := infra.WrapRepoErr(infra.KindDuplicateKey, "unique violation", errors.New("23505"))

		s.mockRepo.EXPECT().ExistsByISBN(gomock.Any(), b.ISBN).Return(false, nil)
		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, dupErr)

		view, err := s.commands.Create(ctx, b.BuildCreateParams())
		s.ErrorIs(err, errs.ErrDuplicateISBN)
		s.Nil(view)
	})

	s.Run("error: invalid fields never reach the store", func() {
		params := builder.NewBookBuilder().WithTitle("").BuildCreateParams()

		view, err := s.commands.Create(ctx, params)
		s.ErrorIs(err, errs.ErrInvalidArgument)
		s.Nil(view)
	})
}

func (s *BookCommandsTestSuite) TestUpdate() {
	ctx := context.Background()

	s.Run("success: applies title and author, keeps isbn", func() {
		b := builder.NewBookBuilder()
		current := b.BuildView()

		s.mockReads.EXPECT().FindByID(gomock.Any(), current.ID).Return(current, nil)
		s.mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		view, err := s.commands.Update(ctx, commands.UpdateBookParams{
			ID:     current.ID,
			Title:  "Novo Título",
			Author: "Nova Autora",
		})
		s.NoError(err)
		s.Equal("Novo Título", view.Title)
		s.Equal("Nova Autora", view.Author)
		s.Equal(current.ISBN, view.ISBN)
	})

	s.Run("error: nil id is rejected up front", func() {
		view, err := s.commands.Update(ctx, commands.UpdateBookParams{
			ID:     uuid.Nil,
			Title:  "Novo Título",
			Author: "Nova Autora",
		})
		s.ErrorIs(err, errs.ErrInvalidArgument)
		s.Nil(view)
	})

	s.Run("error: unknown id", func() {
		id := uuid.New()
		notFound := infra.WrapRepoErr(infra.KindNotFound, "book not found", errors.New("no rows"))

		s.mockReads.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFound)

		view, err := s.commands.Update(ctx, commands.UpdateBookParams{
			ID:     id,
			Title:  "Novo Título",
			Author: "Nova Autora",
		})
		s.ErrorIs(err, errs.ErrBookNotFound)
		s.Nil(view)
	})

	s.Run("error: empty title rejected before the write", func() {
		current := builder.NewBookBuilder().BuildView()

		s.mockReads.EXPECT().FindByID(gomock.Any(), current.ID).Return(current, nil)

		view, err := s.commands.Update(ctx, commands.UpdateBookParams{
			ID:     current.ID,
			Title:  "",
			Author: "Nova Autora",
		})
		s.ErrorIs(err, errs.ErrInvalidArgument)
		s.Nil(view)
	})
}

func (s *BookCommandsTestSuite) TestDelete() {
	ctx := context.Background()

	s.Run("success", func() {
		id := uuid.New()
		s.mockRepo.EXPECT().Delete(gomock.Any(), id).Return(nil)

		s.NoError(s.commands.Delete(ctx, id))
	})

	s.Run("error: nil id is rejected up front", func() {
		s.ErrorIs(s.commands.Delete(ctx, uuid.Nil), errs.ErrInvalidArgument)
	})

	s.Run("error: unknown id", func() {
		id := uuid.New()
		notFound := infra.WrapRepoErr(infra.KindNotFound, "book not found", errors.New("no rows"))

		s.mockRepo.EXPECT().Delete(gomock.Any(), id).Return(notFound)

		s.ErrorIs(s.commands.Delete(ctx, id), errs.ErrBookNotFound)
	})
}
