package controllers

import (
	"net/http"

	"funtrip/internal/models/request_models"
	"funtrip/internal/services"
	"funtrip/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// GenerateForTrip godoc
// @Summary Generate an itinerary for a trip
// @Description Call the generative model and persist the result as a new itinerary version
// @Tags Itinerary
// @Produce json
// @Param tripId path int true "Trip ID"
// @Success 201 {object} response_models.ItineraryResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/generate/{tripId} [post]
func (i *ItineraryController) GenerateForTrip(c *gin.Context) {
	tripID, ok := parseIDParam(c, "tripId")
	if !ok {
		return
	}

	itinerary, err := i.itineraryService.GenerateForTrip(c.Request.Context(), tripID, c.GetUint("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, itinerary, "Itinerary generated successfully")
}

// GenerateForGuest godoc
// @Summary Generate an itinerary without an account
// @Description Run the generation pipeline on raw trip fields; nothing is stored
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.GuestTripRequest true "Trip details"
// @Success 200 {object} response_models.ItineraryResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /guest/itineraries/generate [post]
func (i *ItineraryController) GenerateForGuest(c *gin.Context) {
	var req request_models.GuestTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip payload: "+err.Error())
		return
	}

	itinerary, err := i.itineraryService.GenerateForGuest(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, itinerary, "Itinerary generated successfully")
}

// GetItinerariesByTrip godoc
// @Summary List itineraries for a trip
// @Description Fetch every stored itinerary version for a trip, newest version first
// @Tags Itinerary
// @Produce json
// @Param tripId path int true "Trip ID"
// @Success 200 {array} response_models.ItineraryResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/trip/{tripId} [get]
func (i *ItineraryController) GetItinerariesByTrip(c *gin.Context) {
	tripID, ok := parseIDParam(c, "tripId")
	if !ok {
		return
	}

	itineraries, err := i.itineraryService.GetItinerariesByTrip(c.Request.Context(), tripID, c.GetUint("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, itineraries, "Itineraries fetched successfully")
}

// GetItineraryByID godoc
// @Summary Get an itinerary by ID
// @Tags Itinerary
// @Produce json
// @Param itineraryId path int true "Itinerary ID"
// @Success 200 {object} response_models.ItineraryResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{itineraryId} [get]
func (i *ItineraryController) GetItineraryByID(c *gin.Context) {
	itineraryID, ok := parseIDParam(c, "itineraryId")
	if !ok {
		return
	}

	itinerary, err := i.itineraryService.GetItineraryByID(c.Request.Context(), itineraryID, c.GetUint("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, itinerary, "Itinerary fetched successfully")
}

// DeleteItinerary godoc
// @Summary Delete an itinerary
// @Tags Itinerary
// @Produce json
// @Param itineraryId path int true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{itineraryId} [delete]
func (i *ItineraryController) DeleteItinerary(c *gin.Context) {
	itineraryID, ok := parseIDParam(c, "itineraryId")
	if !ok {
		return
	}

	if err := i.itineraryService.DeleteItinerary(c.Request.Context(), itineraryID, c.GetUint("user_id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, nil, "Itinerary deleted successfully")
}
