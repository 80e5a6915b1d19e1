package http

import (
	"math/rand"
	"net/http"
	"strconv"

	"creatorflow/domain/dto"
	"creatorflow/usecase"

	"github.com/gin-gonic/gin"
)

type IClipHandler interface {
	Progress(ctx *gin.Context)
	Caption(ctx *gin.Context)
}

type ClipHandler struct {
	window float64
}

func NewClipHandler(windowSeconds float64) IClipHandler {
	if windowSeconds <= 0 {
		windowSeconds = usecase.DefaultClipWindow
	}
	return &ClipHandler{window: windowSeconds}
}

// Progress handles GET /api/clip/progress?elapsed=
func (h *ClipHandler) Progress(ctx *gin.Context) {
	elapsed, err := strconv.ParseFloat(ctx.DefaultQuery("elapsed", "0"), 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "elapsed must be a number of seconds"})
		return
	}
	player := usecase.NewClipPlayer(h.window)
	player.Play()
	ended := player.Advance(elapsed)
	ctx.JSON(http.StatusOK, dto.ClipProgressView{
		Elapsed:  player.Position(),
		Window:   player.Window(),
		Progress: player.Progress(),
		Ended:    ended,
	})
}

// Caption handles GET /api/clip/caption?seed=&set=
// Without a seed a random caption is picked.
func (h *ClipHandler) Caption(ctx *gin.Context) {
	seed := rand.Int()
	if raw := ctx.Query("seed"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "seed must be an integer"})
			return
		}
		seed = v
	}

	hashtags := usecase.SuggestedHashtags()
	if set := ctx.Query("set"); set != "" {
		if tags := usecase.HashtagSet(set); tags != nil {
			hashtags = tags
		}
	}
	ctx.JSON(http.StatusOK, dto.CaptionSuggestion{
		Seed:     seed,
		Caption:  usecase.PickCaption(seed),
		Hashtags: hashtags,
	})
}
