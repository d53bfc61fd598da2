//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hotel-booking-api/internal/handler/api"
	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/pkg/jwt"
	"hotel-booking-api/internal/usecase/commands"
	"hotel-booking-api/tests/common/builder"
	"hotel-booking-api/tests/common/httptest"
	"hotel-booking-api/tests/common/testutil"
	commandsmock "hotel-booking-api/tests/mock/commands"
	queriesmock "hotel-booking-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
	currentUser  uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries)
	s.currentUser = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.currentUser)
		c.Next()
	}

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/refresh", s.handler.Refresh)
	s.router.GET("/auth/me", authMiddleware, s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) authResult() *commands.AuthResult {
	return &commands.AuthResult{
		Tokens: jwt.TokenPair{
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
		},
		User: builder.NewUserBuilder().BuildView(),
	}
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := map[string]any{
		"email":    "guest@example.com",
		"password": "password123",
	}

	s.Run("returns a token pair with the user", func() {
		result := s.authResult()
		s.mockCommands.EXPECT().Login(gomock.Any(), commands.LoginCommand{
			Email:    "guest@example.com",
			Password: "password123",
		}).Return(result, nil)

		w := httptest.PerformRequest(s.T(), s.router, "POST", url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &response)
		s.Equal("access-token", response.AccessToken)
		s.Equal("refresh-token", response.RefreshToken)
		s.Equal(result.User.Email, response.User.Email)
	})

	s.Run("validates the request body", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing email", mutate: testutil.Field("email", nil)},
			{name: "malformed email", mutate: testutil.Field("email", "not-an-email")},
			{name: "missing password", mutate: testutil.Field("password", nil)},
			{name: "short password", mutate: testutil.Field("password", "short")},
		}
		for _, c := range cases {
			s.Run(c.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, c.mutate)
				w := httptest.PerformRequest(s.T(), s.router, "POST", url, body, "")
				httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("wrong credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrInvalidCredentials)

		w := httptest.PerformRequest(s.T(), s.router, "POST", url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("deactivated account", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrUserInactive)

		w := httptest.PerformRequest(s.T(), s.router, "POST", url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Account is inactive")
	})
}

func (s *AuthHandlerTestSuite) TestRefresh() {
	url := "/auth/refresh"
	reqBody := map[string]any{"refresh_token": "refresh-token"}

	s.Run("exchanges the refresh token", func() {
		result := s.authResult()
		s.mockCommands.EXPECT().Refresh(gomock.Any(), "refresh-token").Return(result, nil)

		w := httptest.PerformRequest(s.T(), s.router, "POST", url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &response)
		s.Equal("access-token", response.AccessToken)
	})

	s.Run("missing token", func() {
		w := httptest.PerformRequest(s.T(), s.router, "POST", url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("invalid token", func() {
		s.mockCommands.EXPECT().Refresh(gomock.Any(), "refresh-token").
			Return(nil, errs.ErrInvalidCredentials)

		w := httptest.PerformRequest(s.T(), s.router, "POST", url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid email or password")
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("returns the caller's profile", func() {
		view := builder.NewUserBuilder().WithID(s.currentUser).BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.currentUser).Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, "GET", url, nil, "token")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &response)
		s.Equal(s.currentUser, response.ID)
		s.Equal(view.Email, response.Email)
	})

	s.Run("requires authentication", func() {
		w := httptest.PerformRequest(s.T(), s.router, "GET", url, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("profile row gone", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.currentUser).
			Return(nil, errs.ErrUserNotFound)

		w := httptest.PerformRequest(s.T(), s.router, "GET", url, nil, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "User not found")
	})
}
