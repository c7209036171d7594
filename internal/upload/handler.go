package upload

import (
	"errors"
	"net/http"

	"github.com/highlighthero/backend/internal/response"
)

// Handler holds HTTP handlers for upload endpoints.
type Handler struct {
	issuer *Issuer
}

// NewHandler creates a new upload Handler.
func NewHandler(issuer *Issuer) *Handler {
	return &Handler{issuer: issuer}
}

// PresignedURL godoc
//
//	@Summary		Get a pre-signed upload URL
//	@Description	Mints a unique object key and returns a URL the client can PUT the video to directly. The URL expires after 15 minutes.
//	@Tags			upload
//	@Produce		json
//	@Param			filename		query		string	true	"Original file name"
//	@Param			content_type	query		string	false	"Video MIME type"	default(video/mp4)
//	@Success		200				{object}	Grant
//	@Failure		400				{object}	response.ErrorBody
//	@Failure		422				{object}	response.ErrorBody
//	@Failure		500				{object}	response.ErrorBody
//	@Router			/upload/presigned-url [get]
func (h *Handler) PresignedURL(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	grant, err := h.issuer.Issue(r.Context(), q.Get("filename"), q.Get("content_type"))
	if err != nil {
		writeIssueError(w, err)
		return
	}

	response.OK(w, grant)
}

func writeIssueError(w http.ResponseWriter, err error) {
	var backendErr *BackendError
	switch {
	case errors.Is(err, ErrBucketNotConfigured):
		response.InternalError(w, ErrBucketNotConfigured.Error())
	case errors.Is(err, ErrFilenameRequired):
		response.Unprocessable(w, err.Error())
	case errors.Is(err, ErrUnsupportedMediaType):
		response.BadRequest(w, err.Error())
	case errors.As(err, &backendErr):
		response.InternalError(w, backendErr.Error())
	default:
		response.InternalError(w, "internal server error")
	}
}
