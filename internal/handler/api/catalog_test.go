//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hotel-booking-api/internal/handler/api"
	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/queries"
	"hotel-booking-api/tests/common/builder"
	"hotel-booking-api/tests/common/httptest"
	queriesmock "hotel-booking-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockCatalogQueries
	handler     *api.CatalogHandler
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewCatalogHandler(s.mockQueries)

	s.router.GET("/categories", s.handler.ListCategories)
	s.router.GET("/categories/:id", s.handler.GetCategory)
	s.router.GET("/amenities", s.handler.ListAmenities)
	s.router.GET("/amenities/:id", s.handler.GetAmenity)
	s.router.GET("/rooms", s.handler.ListRooms)
	s.router.GET("/rooms/:id", s.handler.GetRoom)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestListRooms() {
	s.Run("lists rooms with category and amenities", func() {
		view := builder.NewRoomBuilder().BuildView()
		view.Amenities = []queries.AmenityView{{ID: uuid.New(), Name: "WiFi"}}
		s.mockQueries.EXPECT().ListRooms(gomock.Any()).
			Return([]*queries.RoomView{view}, nil)

		w := httptest.PerformRequest(s.T(), s.router, "GET", "/rooms", nil, "")

		var response []resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal(view.Title, response[0].Title)
		s.Equal(view.Category.Name, response[0].Category.Name)
		s.Require().Len(response[0].Amenities, 1)
		s.Equal("WiFi", response[0].Amenities[0].Name)
	})
}

func (s *CatalogHandlerTestSuite) TestGetRoom() {
	view := builder.NewRoomBuilder().BuildView()
	url := "/rooms/" + view.ID.String()

	s.Run("returns the room", func() {
		s.mockQueries.EXPECT().GetRoom(gomock.Any(), view.ID).Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, "GET", url, nil, "")

		var response resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(view.PricePerNightCents, response.PricePerNightCents)
	})

	s.Run("unknown room", func() {
		s.mockQueries.EXPECT().GetRoom(gomock.Any(), view.ID).
			Return(nil, errs.ErrRoomNotFound)

		w := httptest.PerformRequest(s.T(), s.router, "GET", url, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Room not found")
	})

	s.Run("malformed id", func() {
		w := httptest.PerformRequest(s.T(), s.router, "GET", "/rooms/nope", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid room ID format")
	})
}

func (s *CatalogHandlerTestSuite) TestGetCategory() {
	id := uuid.New()
	url := "/categories/" + id.String()

	s.Run("returns the category", func() {
		view := &queries.CategoryView{ID: id, Name: "Deluxe"}
		s.mockQueries.EXPECT().GetCategory(gomock.Any(), id).Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, "GET", url, nil, "")

		var response resdto.CategoryResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &response)
		s.Equal("Deluxe", response.Name)
	})

	s.Run("unknown category", func() {
		s.mockQueries.EXPECT().GetCategory(gomock.Any(), id).
			Return(nil, errs.ErrCategoryNotFound)

		w := httptest.PerformRequest(s.T(), s.router, "GET", url, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Category not found")
	})
}

func (s *CatalogHandlerTestSuite) TestGetAmenity() {
	id := uuid.New()
	url := "/amenities/" + id.String()

	s.Run("unknown amenity", func() {
		s.mockQueries.EXPECT().GetAmenity(gomock.Any(), id).
			Return(nil, errs.ErrAmenityNotFound)

		w := httptest.PerformRequest(s.T(), s.router, "GET", url, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Amenity not found")
	})

	s.Run("lists amenities", func() {
		s.mockQueries.EXPECT().ListAmenities(gomock.Any()).
			Return([]*queries.AmenityView{{ID: id, Name: "WiFi"}}, nil)

		w := httptest.PerformRequest(s.T(), s.router, "GET", "/amenities", nil, "")

		var response []resdto.AmenityResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal("WiFi", response[0].Name)
	})
}
