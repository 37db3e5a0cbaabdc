package upload

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/thirteen-hero/myCats-server/internal/web"
	"github.com/thirteen-hero/myCats-server/pkg/utilities"
)

// maxFileSize caps a single uploaded file at 8 MiB.
const maxFileSize = 8 << 20

// Handler accepts a single multipart file under the `file` field and stores
// it with a ksuid name so uploads never collide.
type Handler struct {
	dir       string
	urlPrefix string
	logger    *zap.SugaredLogger
}

// NewHandler builds an upload handler. dir is the filesystem destination,
// urlPrefix the public path the stored file is served under.
func NewHandler(dir, urlPrefix string, logger *zap.SugaredLogger) *Handler {
	return &Handler{dir: dir, urlPrefix: urlPrefix, logger: logger}
}

// Upload handles POST /upload.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFileSize)
	file, header, err := r.FormFile("file")
	if err != nil {
		h.logger.Debugw("invalid upload", "err", err)
		web.RespondError(w, web.NewError(http.StatusBadRequest, "a single file field named 'file' is required"))
		return
	}
	defer file.Close()

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		h.logger.Errorw("upload dir unavailable", "dir", h.dir, "err", err)
		web.RespondError(w, err)
		return
	}

	name := utilities.NewKSUID() + filepath.Ext(header.Filename)
	dst, err := os.Create(filepath.Join(h.dir, name))
	if err != nil {
		h.logger.Errorw("upload create failed", "err", err)
		web.RespondError(w, err)
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		h.logger.Errorw("upload write failed", "err", err)
		web.RespondError(w, err)
		return
	}

	h.logger.Infow("file uploaded", "name", name, "size", header.Size)
	web.RespondJSON(w, http.StatusOK, h.urlPrefix+"/"+name)
}
