package video

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/highlighthero/backend/internal/response"
)

// maxBodyBytes bounds the registration payload.
const maxBodyBytes = 64 << 10

// Handler holds HTTP handlers for video endpoints.
type Handler struct {
	log *zap.Logger
}

// NewHandler creates a new video Handler.
func NewHandler(log *zap.Logger) *Handler {
	return &Handler{log: log}
}

// Register godoc
//
//	@Summary		Register an uploaded video
//	@Description	Called after the client finished the direct upload. Echoes the registration; nothing is persisted.
//	@Tags			videos
//	@Accept			json
//	@Produce		json
//	@Param			request	body		Registration	true	"Uploaded video"
//	@Success		200		{object}	Acknowledgement
//	@Failure		422		{object}	response.ErrorBody
//	@Router			/videos [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	reg, err := DecodeRegistration(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		response.Unprocessable(w, err.Error())
		return
	}

	h.log.Info("video registered",
		zap.String("object_key", reg.ObjectKey),
		zap.String("user_id", reg.UserID),
		zap.String("filename", reg.Filename),
	)

	response.OK(w, Acknowledge(reg))
}
