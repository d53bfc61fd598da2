//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/domain/user"
	"hotel-booking-api/internal/handler/api"
	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/queries"
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

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	currentUser  uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.currentUser = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.currentUser)
		c.Set("user_role", user.RoleGuest)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.CreateBooking)
	s.router.GET("/bookings", authMiddleware, s.handler.GetUserBookings)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
	s.router.PATCH("/bookings/:id", authMiddleware, s.handler.UpdateBooking)
	s.router.POST("/bookings/:id/activate", authMiddleware, s.handler.ActivateBooking)
	s.router.GET("/bookings/:id/qr_code", authMiddleware, s.handler.GetQRCode)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
	returnView := builder.NewBookingBuilder().BuildView()

	s.Run("creates a booking", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.currentUser).
			Return(returnView, nil)

		w := httptest.PerformRequest(s.T(), s.router, "POST", url, reqBody, "token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.TotalPriceCents, response.TotalPriceCents)
	})

	s.Run("requires authentication", func() {
		w := httptest.PerformRequest(s.T(), s.router, "POST", url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("validates the request body", func() {
		cases := []testCaseBooking{
			{name: "missing field: room_id (required)", mutate: testutil.Field("room_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: check_in (required)", mutate: testutil.Field("check_in", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: check_out (required)", mutate: testutil.Field("check_out", nil), expectCode: http.StatusBadRequest},
			{name: "malformed room_id", mutate: testutil.Field("room_id", "not-a-uuid"), expectCode: http.StatusBadRequest},
			{name: "malformed check_in", mutate: testutil.Field("check_in", "yesterday"), expectCode: http.StatusBadRequest},
		}
		for _, c := range cases {
			s.Run(c.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, c.mutate)
				w := httptest.PerformRequest(s.T(), s.router, "POST", url, body, "token")
				httptest.AssertErrorResponse(s.T(), w, c.expectCode, "Invalid request format")
			})
		}
	})

	s.Run("maps command failures to status codes", func() {
		cases := []struct {
			name         string
			err          error
			expectCode   int
			expectInBody string
		}{
			{name: "inverted dates", err: booking.ErrInvalidDateRange, expectCode: http.StatusBadRequest, expectInBody: "Check-in must be before check-out"},
			{name: "duplicate guest", err: booking.ErrDuplicateGuest, expectCode: http.StatusConflict, expectInBody: "Guest already on the booking"},
			{name: "unknown room", err: errs.ErrRoomNotFound, expectCode: http.StatusNotFound, expectInBody: "Room not found"},
			{name: "unknown additional guest", err: errs.ErrGuestUserNotFound, expectCode: http.StatusNotFound, expectInBody: "Additional guest user not found"},
			{name: "overlapping booking", err: errs.ErrBookingConflict, expectCode: http.StatusConflict, expectInBody: "already exists"},
			{name: "storage failure", err: errs.ErrDatabaseOperationFailed, expectCode: http.StatusInternalServerError, expectInBody: "Internal server error"},
		}
		for _, c := range cases {
			s.Run(c.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.currentUser).
					Return(nil, c.err)

				w := httptest.PerformRequest(s.T(), s.router, "POST", url, reqBody, "token")
				httptest.AssertErrorResponse(s.T(), w, c.expectCode, c.expectInBody)
			})
		}
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	returnView := builder.NewBookingBuilder().BuildView()
	url := "/bookings/" + returnView.ID.String()

	s.Run("returns the booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).Return(returnView, nil)

		w := httptest.PerformRequest(s.T(), s.router, "GET", url, nil, "token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.RoomTitle, response.RoomTitle)
	})

	s.Run("unknown booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(nil, errs.ErrBookingNotFound)

		w := httptest.PerformRequest(s.T(), s.router, "GET", url, nil, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Booking not found")
	})

	s.Run("malformed id", func() {
		w := httptest.PerformRequest(s.T(), s.router, "GET", "/bookings/nope", nil, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid booking ID format")
	})
}

// ================================================================================
// TestGetUserBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetUserBookings() {
	url := "/bookings"

	s.Run("lists the caller's bookings", func() {
		items := []*queries.BookingListItem{}
		first := builder.NewBookingBuilder().BuildListItem()
		second := builder.NewBookingBuilder().WithStatus("active").BuildListItem()
		items = append(items, &first, &second)

		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.currentUser).Return(items, nil)

		w := httptest.PerformRequest(s.T(), s.router, "GET", url, nil, "token")

		var response []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(first.ID, response[0].ID)
		s.Equal("active", response[1].Status)
	})

	s.Run("empty list is an empty array", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.currentUser).
			Return([]*queries.BookingListItem{}, nil)

		w := httptest.PerformRequest(s.T(), s.router, "GET", url, nil, "token")

		var response []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &response)
		s.Empty(response)
	})
}

// ================================================================================
// TestUpdateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestUpdateBooking() {
	returnView := builder.NewBookingBuilder().BuildView()
	url := "/bookings/" + returnView.ID.String()

	s.Run("patches the booking", func() {
		newCheckOut := time.Date(2026, 9, 15, 11, 0, 0, 0, time.UTC)
		s.mockCommands.EXPECT().Update(gomock.Any(), returnView.ID, gomock.Any()).
			Return(returnView, nil)

		body := map[string]any{"check_out": newCheckOut.Format(time.RFC3339)}
		w := httptest.PerformRequest(s.T(), s.router, "PATCH", url, body, "token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
	})

	s.Run("unknown booking", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), returnView.ID, gomock.Any()).
			Return(nil, errs.ErrBookingNotFound)

		w := httptest.PerformRequest(s.T(), s.router, "PATCH", url, map[string]any{}, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Booking not found")
	})

	s.Run("inverted patched dates", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), returnView.ID, gomock.Any()).
			Return(nil, booking.ErrInvalidDateRange)

		w := httptest.PerformRequest(s.T(), s.router, "PATCH", url, map[string]any{}, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Check-in must be before check-out")
	})
}

// ================================================================================
// TestActivateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestActivateBooking() {
	returnView := builder.NewBookingBuilder().WithStatus("active").BuildView()
	url := "/bookings/" + returnView.ID.String() + "/activate"

	s.Run("activates and returns the refreshed booking with 201", func() {
		s.mockCommands.EXPECT().Activate(gomock.Any(), returnView.ID, s.currentUser).
			Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).Return(returnView, nil)

		w := httptest.PerformRequest(s.T(), s.router, "POST", url, nil, "token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &response)
		s.Equal("active", response.Status)
	})

	s.Run("maps activation failures to status codes", func() {
		cases := []struct {
			name         string
			err          error
			expectCode   int
			expectInBody string
		}{
			{name: "already activated", err: booking.ErrAlreadyActivated, expectCode: http.StatusBadRequest, expectInBody: "already activated"},
			{name: "too early", err: booking.ErrActivationTooEarly, expectCode: http.StatusBadRequest, expectInBody: "before check-in"},
			{name: "not a party", err: errs.ErrNotBookingParty, expectCode: http.StatusBadRequest, expectInBody: "not a party"},
			{name: "unknown booking", err: errs.ErrBookingNotFound, expectCode: http.StatusNotFound, expectInBody: "Booking not found"},
		}
		for _, c := range cases {
			s.Run(c.name, func() {
				s.mockCommands.EXPECT().Activate(gomock.Any(), returnView.ID, s.currentUser).
					Return(c.err)

				w := httptest.PerformRequest(s.T(), s.router, "POST", url, nil, "token")
				httptest.AssertErrorResponse(s.T(), w, c.expectCode, c.expectInBody)
			})
		}
	})
}

// ================================================================================
// TestGetQRCode
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetQRCode() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/qr_code"

	s.Run("returns the caller's credential", func() {
		cred := &queries.CredentialView{
			ID:        uuid.New(),
			UserID:    s.currentUser,
			BookingID: bookingID,
			ImagePath: "qr_codes/qr_code_test.png",
			Status:    "active",
			CreatedAt: time.Now(),
		}
		s.mockQueries.EXPECT().GetMyCredential(gomock.Any(), bookingID, s.currentUser).
			Return(cred, nil)

		w := httptest.PerformRequest(s.T(), s.router, "GET", url, nil, "token")

		var response resdto.CredentialResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &response)
		s.Equal(cred.ID, response.ID)
		s.Equal(cred.ImagePath, response.ImagePath)
	})

	s.Run("maps credential failures to status codes", func() {
		cases := []struct {
			name         string
			err          error
			expectCode   int
			expectInBody string
		}{
			{name: "unknown booking", err: errs.ErrBookingNotFound, expectCode: http.StatusNotFound, expectInBody: "Booking not found"},
			{name: "not a party", err: errs.ErrNotBookingParty, expectCode: http.StatusBadRequest, expectInBody: "not a party"},
			{name: "booking not activated yet", err: errs.ErrBookingNotActive, expectCode: http.StatusBadRequest, expectInBody: "not activated yet"},
			{name: "credential missing", err: errs.ErrCredentialNotFound, expectCode: http.StatusNotFound, expectInBody: "QR code not found"},
		}
		for _, c := range cases {
			s.Run(c.name, func() {
				s.mockQueries.EXPECT().GetMyCredential(gomock.Any(), bookingID, s.currentUser).
					Return(nil, c.err)

				w := httptest.PerformRequest(s.T(), s.router, "GET", url, nil, "token")
				httptest.AssertErrorResponse(s.T(), w, c.expectCode, c.expectInBody)
			})
		}
	})

	s.Run("requires authentication", func() {
		w := httptest.PerformRequest(s.T(), s.router, "GET", url, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Unauthorized")
	})
}
