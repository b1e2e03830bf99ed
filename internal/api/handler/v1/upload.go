package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wishwell/wishwell-api/internal/api/handler/v1/response"
	"github.com/wishwell/wishwell-api/internal/storage"
)

// maxUploadBytes caps image uploads at 5 MiB.
const maxUploadBytes = 5 << 20

type UploadHandler struct {
	uploader *storage.Uploader
}

func NewUploadHandler(uploader *storage.Uploader) *UploadHandler {
	return &UploadHandler{
		uploader: uploader,
	}
}

// HandleUpload godoc
// @Summary      Upload an image
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        file   formData   file   true "image file"
// @Param        kind   formData   string true "events, wishes or cards"
// @Success      201
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /uploads [post]
func (h *UploadHandler) HandleUpload(ctx *gin.Context) {
	kind := ctx.PostForm("kind")
	if !storage.ValidPrefix(kind) {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("kind must be events, wishes or cards")))

		return
	}

	header, err := ctx.FormFile("file")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}
	if header.Size > maxUploadBytes {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("file exceeds the 5 MiB limit")))

		return
	}

	file, err := header.Open()
	if err != nil {
		err = fmt.Errorf("v1.HandleUpload -> header.Open -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}
	defer file.Close()

	url, err := h.uploader.Upload(kind, header.Filename, file)
	if err != nil {
		err = fmt.Errorf("v1.HandleUpload -> h.uploader.Upload -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.OK(ctx, http.StatusCreated, gin.H{"url": url})
}
