package dto

import "strings"

// CreateReviewRequest represents the request to post a review
type CreateReviewRequest struct {
	Rating  int      `json:"rating"`
	Comment string   `json:"comment"`
	Images  []string `json:"images,omitempty"` // uploaded file names
}

// Validate validates the CreateReviewRequest
func (r *CreateReviewRequest) Validate() (bool, string) {
	if r.Rating < 1 || r.Rating > 5 {
		return false, "Rating must be between 1 and 5"
	}
	if strings.TrimSpace(r.Comment) == "" {
		return false, "Comment is required"
	}
	return true, ""
}

// UpdateReviewRequest represents the request to edit a review
type UpdateReviewRequest struct {
	Rating  int      `json:"rating,omitempty"`
	Comment string   `json:"comment,omitempty"`
	Images  []string `json:"images,omitempty"`
}

// CreateReplyRequest represents the request to reply under a review
type CreateReplyRequest struct {
	Comment string `json:"comment"`
}

// Validate validates the CreateReplyRequest
func (r *CreateReplyRequest) Validate() (bool, string) {
	if strings.TrimSpace(r.Comment) == "" {
		return false, "Comment is required"
	}
	return true, ""
}

// LikeResponse is the backend payload after a like toggle
type LikeResponse struct {
	Likes   int  `json:"likes"`
	IsLiked bool `json:"is_liked"`
}

// UploadResponse is the backend payload after a multipart upload
type UploadResponse struct {
	FileName string `json:"file_name"`
	URL      string `json:"url,omitempty"`
}
