package api

import (
	"errors"
	"net/http"

	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/internal/handler/httperr"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogHandler serves the read-only room catalog.
type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{catalogQueries: catalogQueries}
}

// @Summary List categories
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CategoryResponse
// @Router /categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	views, err := h.catalogQueries.ListCategories(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCategoryViews(views))
}

// @Summary Get category
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} resdto.CategoryResponse
// @Failure 404 {object} httperr.Response
// @Router /categories/{id} [get]
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid category ID format", nil)
		return
	}

	view, err := h.catalogQueries.GetCategory(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCategoryNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Category not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromCategoryView(view))
}

// @Summary List amenities
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AmenityResponse
// @Router /amenities [get]
func (h *CatalogHandler) ListAmenities(c *gin.Context) {
	views, err := h.catalogQueries.ListAmenities(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAmenityViews(views))
}

// @Summary Get amenity
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Amenity ID"
// @Success 200 {object} resdto.AmenityResponse
// @Failure 404 {object} httperr.Response
// @Router /amenities/{id} [get]
func (h *CatalogHandler) GetAmenity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid amenity ID format", nil)
		return
	}

	view, err := h.catalogQueries.GetAmenity(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrAmenityNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Amenity not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromAmenityView(view))
}

// @Summary List rooms
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms [get]
func (h *CatalogHandler) ListRooms(c *gin.Context) {
	views, err := h.catalogQueries.ListRooms(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// @Summary Get room
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [get]
func (h *CatalogHandler) GetRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room ID format", nil)
		return
	}

	view, err := h.catalogQueries.GetRoom(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRoomNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}
