package slider

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/thirteen-hero/myCats-server/internal/slider/entity"
	"github.com/thirteen-hero/myCats-server/internal/web"
)

// homepage carousel shows at most two slides
const maxSlides = 2

// Repository provides read access to the sliders collection.
type Repository interface {
	FindAll(ctx context.Context) ([]entity.Slider, error)
}

// Handler exposes the slider listing endpoint.
type Handler struct {
	repo   Repository
	logger *zap.SugaredLogger
}

func NewHandler(repo Repository, logger *zap.SugaredLogger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

// List handles GET /slider/list.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	sliders, err := h.repo.FindAll(r.Context())
	if err != nil {
		h.logger.Warnw("slider list failed", "err", err)
		web.RespondError(w, err)
		return
	}
	if len(sliders) > maxSlides {
		sliders = sliders[:maxSlides]
	}
	if sliders == nil {
		sliders = []entity.Slider{}
	}
	web.RespondJSON(w, http.StatusOK, sliders)
}
