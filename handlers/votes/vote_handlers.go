package votes

import (
	"errors"
	"net/http"

	"api/database"
	"api/middleware"
	"api/realtime"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		response.Error(c, http.StatusNotFound, ErrPhotoNotFound)
	case errors.Is(err, services.ErrForbidden):
		response.Error(c, http.StatusForbidden, ErrPhotoNotApproved)
	case errors.Is(err, services.ErrAlreadyVoted):
		response.Error(c, http.StatusConflict, ErrAlreadyVoted)
	case errors.Is(err, services.ErrVoteLimitReached):
		response.Error(c, http.StatusConflict, ErrLimitReached)
	default:
		response.Error(c, http.StatusInternalServerError, ErrFailedRecordVote)
	}
}

// Vote records a vote on an approved photo
// @Summary Vote for a photo
// @Description Record a vote; a user holds at most three concurrent votes per competition and one per photo
// @Tags Votes
// @Produce json
// @Param photo_id path string true "Photo ID"
// @Success 201 {object} models.Vote
// @Failure 403,404,409 {object} map[string]string
// @Router /votes/{photo_id} [post]
// @Security Bearer
func Vote(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	vote, err := services.VotePhoto(database.DB, user.ID, c.Param("photo_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if photo, err := services.GetPhotoByID(database.DB, vote.PhotoID); err == nil {
		count, _ := services.GetPhotoVoteCount(database.DB, vote.PhotoID)
		realtime.BroadcastPhotoUpdate(realtime.PhotoUpdate{
			CompetitionID: photo.CompetitionID,
			Photo:         *photo,
			UpdateType:    realtime.UpdateVoted,
			VoteCount:     count,
		})
	}

	c.JSON(http.StatusCreated, vote)
}

// Unvote withdraws the caller's vote from a photo
// @Summary Remove a vote
// @Tags Votes
// @Produce json
// @Param photo_id path string true "Photo ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /votes/{photo_id} [delete]
// @Security Bearer
func Unvote(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	if err := services.UnvotePhoto(database.DB, user.ID, c.Param("photo_id")); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.Error(c, http.StatusNotFound, ErrVoteNotFound)
			return
		}
		response.Error(c, http.StatusInternalServerError, ErrFailedRemoveVote)
		return
	}

	response.Message(c, http.StatusOK, "Vote removed")
}

// GetPhotoVotes returns the vote count of a photo
// @Summary Get a photo's vote count
// @Tags Votes
// @Produce json
// @Param photo_id path string true "Photo ID"
// @Success 200 {object} map[string]int64
// @Failure 500 {object} map[string]string
// @Router /votes/photo/{photo_id} [get]
func GetPhotoVotes(c *gin.Context) {
	count, err := services.GetPhotoVoteCount(database.DB, c.Param("photo_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchVotes)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// GetVoteCounts returns the vote counts for a set of photos
// @Summary Get vote counts for several photos
// @Tags Votes
// @Accept json
// @Produce json
// @Param request body VoteCountsRequest true "Photo IDs"
// @Success 200 {object} map[string]int64
// @Failure 400,500 {object} map[string]string
// @Router /votes/counts [post]
func GetVoteCounts(c *gin.Context) {
	var req VoteCountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	counts, err := services.GetVoteCounts(database.DB, req.PhotoIDs)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchVotes)
		return
	}

	c.JSON(http.StatusOK, counts)
}

// GetUserVotes returns the caller's current votes
// @Summary Get own votes
// @Tags Votes
// @Produce json
// @Success 200 {array} models.Vote
// @Failure 401 {object} map[string]string
// @Router /votes/user [get]
// @Security Bearer
func GetUserVotes(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	votes, err := services.GetUserVotes(database.DB, user.ID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchVotes)
		return
	}

	c.JSON(http.StatusOK, votes)
}

// GetCategoryVote returns the caller's vote inside a category, if any
// @Summary Get own vote in a category
// @Tags Votes
// @Produce json
// @Param category_id path string true "Category ID"
// @Success 200 {object} models.Vote
// @Failure 401 {object} map[string]string
// @Router /votes/category/{category_id} [get]
// @Security Bearer
func GetCategoryVote(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	vote, err := services.GetCategoryVote(database.DB, user.ID, c.Param("category_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchVotes)
		return
	}

	c.JSON(http.StatusOK, vote)
}
