package controllers

import (
	"net/http"
	"strconv"

	"funtrip/internal/models/request_models"
	"funtrip/internal/services"
	"funtrip/pkg/utils"

	"github.com/gin-gonic/gin"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// CreateTrip godoc
// @Summary Create a trip
// @Description Create a trip owned by the authenticated account
// @Tags Trip
// @Accept json
// @Produce json
// @Param request body request_models.CreateTripRequest true "Trip details"
// @Success 201 {object} response_models.TripResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips [post]
func (t *TripController) CreateTrip(c *gin.Context) {
	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip payload: "+err.Error())
		return
	}

	trip, err := t.tripService.CreateTrip(c.Request.Context(), c.GetUint("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, trip, "Trip created successfully")
}

// GetTrips godoc
// @Summary List the authenticated account's trips
// @Tags Trip
// @Produce json
// @Success 200 {array} response_models.TripResponse
// @Security BearerAuth
// @Router /trips [get]
func (t *TripController) GetTrips(c *gin.Context) {
	trips, err := t.tripService.GetTripsByUser(c.Request.Context(), c.GetUint("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, trips, "Trips fetched successfully")
}

// GetTripByID godoc
// @Summary Get a trip by ID
// @Tags Trip
// @Produce json
// @Param tripId path int true "Trip ID"
// @Success 200 {object} response_models.TripResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId} [get]
func (t *TripController) GetTripByID(c *gin.Context) {
	tripID, ok := parseIDParam(c, "tripId")
	if !ok {
		return
	}

	trip, err := t.tripService.GetTripByID(c.Request.Context(), tripID, c.GetUint("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, trip, "Trip fetched successfully")
}

// UpdateTrip godoc
// @Summary Update a trip
// @Description Update mutable trip fields; city and stay address cannot change
// @Tags Trip
// @Accept json
// @Produce json
// @Param tripId path int true "Trip ID"
// @Param request body request_models.UpdateTripRequest true "Fields to change"
// @Success 200 {object} response_models.TripResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId} [put]
func (t *TripController) UpdateTrip(c *gin.Context) {
	tripID, ok := parseIDParam(c, "tripId")
	if !ok {
		return
	}

	var req request_models.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip payload: "+err.Error())
		return
	}

	trip, err := t.tripService.UpdateTrip(c.Request.Context(), tripID, c.GetUint("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, trip, "Trip updated successfully")
}

// DeleteTrip godoc
// @Summary Delete a trip
// @Description Delete a trip and every itinerary generated for it
// @Tags Trip
// @Produce json
// @Param tripId path int true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId} [delete]
func (t *TripController) DeleteTrip(c *gin.Context) {
	tripID, ok := parseIDParam(c, "tripId")
	if !ok {
		return
	}

	if err := t.tripService.DeleteTrip(c.Request.Context(), tripID, c.GetUint("user_id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, nil, "Trip deleted successfully")
}
