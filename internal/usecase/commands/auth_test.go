//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"golfclub-backend/internal/pkg/errs"
	"golfclub-backend/internal/pkg/jwt"
	"golfclub-backend/internal/pkg/password"
	"golfclub-backend/internal/usecase/commands"
	"golfclub-backend/internal/usecase/queries"
	commandsmock "golfclub-backend/tests/mock/commands"
	queriesmock "golfclub-backend/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	readStore  *queriesmock.MockUserReadStore
	userRepo   *commandsmock.MockUserRepository
	jwtService *jwt.Service
	auth       commands.AuthCommands

	userID       uuid.UUID
	passwordHash string
}

const testPassword = "correct-horse-battery"

func (s *AuthCommandsTestSuite) SetupSuite() {
	hash, err := password.HashPassword(testPassword)
	s.Require().NoError(err)
	s.passwordHash = hash
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.readStore = queriesmock.NewMockUserReadStore(s.mockCtrl)
	s.userRepo = commandsmock.NewMockUserRepository(s.mockCtrl)
	s.jwtService = jwt.NewService("test-secret", time.Hour)
	s.userID = uuid.New()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.auth = commands.NewAuthCommands(s.readStore, s.userRepo, s.jwtService, logger)
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) activeUser() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       s.userID,
		Email:    "admin@clubhouse.example",
		Role:     "admin",
		IsActive: true,
	}
}

func (s *AuthCommandsTestSuite) TestLogin() {
	params := commands.LoginParams{Email: "admin@clubhouse.example", Password: testPassword}

	s.Run("success: returns a token that validates against the same service", func() {
		s.readStore.EXPECT().FindByEmail(gomock.Any(), params.Email).
			Return(s.activeUser(), s.passwordHash, nil)
		s.userRepo.EXPECT().UpdateLastLogin(gomock.Any(), s.userID).Return(nil)

		result, err := s.auth.Login(context.Background(), params)
		s.Require().NoError(err)
		s.Equal(s.userID, result.UserID)

		claims, err := s.jwtService.ValidateToken(result.AccessToken)
		s.Require().NoError(err)
		s.Equal(s.userID, claims.UserID)
		s.Equal("admin", claims.Role)
	})

	s.Run("success: login survives a failed last-login update", func() {
		s.readStore.EXPECT().FindByEmail(gomock.Any(), params.Email).
			Return(s.activeUser(), s.passwordHash, nil)
		s.userRepo.EXPECT().UpdateLastLogin(gomock.Any(), s.userID).
			Return(errs.New("db down"))

		result, err := s.auth.Login(context.Background(), params)
		s.Require().NoError(err)
		s.NotEmpty(result.AccessToken)
	})

	s.Run("error: wrong password", func() {
		s.readStore.EXPECT().FindByEmail(gomock.Any(), params.Email).
			Return(s.activeUser(), s.passwordHash, nil)

		_, err := s.auth.Login(context.Background(), commands.LoginParams{
			Email:    params.Email,
			Password: "wrong-password",
		})
		s.ErrorIs(err, commands.ErrInvalidCredentials)
	})

	s.Run("error: unknown user is indistinguishable from a wrong password", func() {
		s.readStore.EXPECT().FindByEmail(gomock.Any(), params.Email).
			Return(nil, "", errs.New("not found"))

		_, err := s.auth.Login(context.Background(), params)
		s.ErrorIs(err, commands.ErrInvalidCredentials)
	})

	s.Run("error: inactive account", func() {
		inactive := s.activeUser()
		inactive.IsActive = false

		s.readStore.EXPECT().FindByEmail(gomock.Any(), params.Email).
			Return(inactive, s.passwordHash, nil)

		_, err := s.auth.Login(context.Background(), params)
		s.ErrorIs(err, commands.ErrUserInactive)
	})

	s.Run("error: malformed email", func() {
		_, err := s.auth.Login(context.Background(), commands.LoginParams{
			Email:    "not-an-email",
			Password: testPassword,
		})
		s.ErrorIs(err, commands.ErrAuthenticationFailed)
	})
}
