//go:build unit

package queries_test

import (
	"context"
	"testing"

	"golfclub-backend/internal/infra"
	"golfclub-backend/internal/pkg/errs"
	"golfclub-backend/internal/usecase/queries"
	"golfclub-backend/tests/common/builder"
	queriesmock "golfclub-backend/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserQueriesTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	readStore *queriesmock.MockUserReadStore
	users     queries.UserQueries
}

func (s *UserQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.readStore = queriesmock.NewMockUserReadStore(s.mockCtrl)
	s.users = queries.NewUserQueries(s.readStore)
}

func (s *UserQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserQueriesSuite(t *testing.T) {
	suite.Run(t, new(UserQueriesTestSuite))
}

func (s *UserQueriesTestSuite) TestGetCurrentUser() {
	s.Run("success", func() {
		view := builder.NewUserBuilder().WithEmail("desk@example.com").WithRole("staff").BuildReadModel()
		s.readStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := s.users.GetCurrentUser(context.Background(), view.ID)
		s.NoError(err)
		s.Equal("desk@example.com", got.Email)
		s.Equal("staff", got.Role)
	})

	s.Run("error: unknown user", func() {
		id := uuid.New()
		s.readStore.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("user not found", errs.New("no rows"), infra.KindNotFound))

		_, err := s.users.GetCurrentUser(context.Background(), id)
		s.ErrorIs(err, queries.ErrUserNotFound)
	})

	s.Run("error: deactivated account", func() {
		view := builder.NewUserBuilder().AsInactive().BuildReadModel()
		s.readStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		_, err := s.users.GetCurrentUser(context.Background(), view.ID)
		s.ErrorIs(err, queries.ErrUserInactive)
	})
}
