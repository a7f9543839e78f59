package config

// Upload validation configuration
type UploadLimitsConfig struct {
	MaxFileSize      int64    // Maximum photo file size in bytes
	AllowedMimeTypes []string // Accepted content types
	MinWidth         int      // Minimum photo width in pixels
	MinHeight        int      // Minimum photo height in pixels

	TitleMinLength       int
	TitleMaxLength       int
	DescriptionMinLength int
	DescriptionMaxLength int
	LocationMinLength    int
	LocationMaxLength    int
}

var DefaultUploadLimits = UploadLimitsConfig{
	MaxFileSize:      10 * 1024 * 1024, // 10 MiB
	AllowedMimeTypes: []string{"image/jpeg", "image/png"},
	MinWidth:         800,
	MinHeight:        600,

	TitleMinLength:       3,
	TitleMaxLength:       100,
	DescriptionMinLength: 20,
	DescriptionMaxLength: 500,
	LocationMinLength:    2,
	LocationMaxLength:    100,
}

// MaxVotesPerCompetition caps the number of concurrent votes a user may
// hold within a single competition.
var MaxVotesPerCompetition = 3
