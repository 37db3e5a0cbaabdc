package product

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/thirteen-hero/myCats-server/internal/web"
)

const defaultPageSize = 8

// Handler exposes the catalog listing endpoint.
type Handler struct {
	svc    *Service
	logger *zap.SugaredLogger
}

func NewHandler(svc *Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// List handles GET /product/list?category=&offset=&limit=.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	category, _ := strconv.Atoi(q.Get("category"))
	offset := parseInt64(q.Get("offset"), 0)
	limit := parseInt64(q.Get("limit"), defaultPageSize)

	page, err := h.svc.List(r.Context(), category, offset, limit)
	if err != nil {
		h.logger.Warnw("product list failed", "err", err)
		web.RespondError(w, err)
		return
	}
	web.RespondJSON(w, http.StatusOK, page)
}

func parseInt64(s string, def int64) int64 {
	if s == "" {
		return def
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 0 {
		return def
	}
	return v
}
