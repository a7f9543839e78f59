package winners

import (
	"errors"
	"net/http"

	"api/database"
	"api/middleware"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// SelectWinner awards a podium place to a photo
// @Summary Select a category winner
// @Tags Winners
// @Accept json
// @Produce json
// @Param request body SelectWinnerRequest true "Winner selection"
// @Success 200 {object} models.Winner
// @Failure 400,404,409,500 {object} map[string]string
// @Router /winners [post]
// @Security Bearer
func SelectWinner(c *gin.Context) {
	admin, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var req SelectWinnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	winner, err := services.SelectWinner(database.DB, req.CategoryID, req.PhotoID, req.Place, admin.ID)
	if err != nil {
		var verr *services.ValidationError
		switch {
		case errors.As(err, &verr):
			response.ValidationError(c, verr.Fields)
		case errors.Is(err, services.ErrNotFound):
			response.Error(c, http.StatusNotFound, ErrPhotoNotFound)
		case errors.Is(err, services.ErrInvalidState):
			response.Error(c, http.StatusConflict, ErrPhotoNotEligible)
		default:
			response.Error(c, http.StatusInternalServerError, ErrFailedSelectWinner)
		}
		return
	}

	c.JSON(http.StatusOK, winner)
}

// GetCompetitionWinners lists the winners of every category of a competition
// @Summary Get competition winners
// @Tags Winners
// @Produce json
// @Param id path string true "Competition ID"
// @Success 200 {array} models.Winner
// @Failure 404,500 {object} map[string]string
// @Router /winners/competition/{id} [get]
func GetCompetitionWinners(c *gin.Context) {
	competitionID := c.Param("id")
	if !services.CompetitionExists(database.DB, competitionID) {
		response.Error(c, http.StatusNotFound, ErrCompetitionNotFound)
		return
	}

	winners, err := services.ListCompetitionWinners(database.DB, competitionID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchWinners)
		return
	}

	c.JSON(http.StatusOK, winners)
}
