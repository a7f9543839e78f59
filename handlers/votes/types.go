package votes

// Constants for error messages
const (
	ErrPhotoNotFound    = "Photo not found"
	ErrVoteNotFound     = "Vote not found"
	ErrPhotoNotApproved = "Only approved photos can be voted on"
	ErrAlreadyVoted     = "You already voted for this photo"
	ErrLimitReached     = "You have used all your votes in this competition"
	ErrInvalidRequest   = "Invalid request data"
	ErrFailedFetchVotes = "Failed to fetch votes"
	ErrFailedRecordVote = "Failed to record vote"
	ErrFailedRemoveVote = "Failed to remove vote"
)

// VoteCountsRequest models a batched vote-count lookup
type VoteCountsRequest struct {
	PhotoIDs []string `json:"photo_ids" binding:"required"`
}
