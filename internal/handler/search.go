package handler

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"nearme/internal/model"
	"nearme/internal/service"
)

// SearchHandler handles the AI search endpoint and the live-results view
// over the refresher's snapshot.
type SearchHandler struct {
	search        *service.SearchService
	refresher     *service.Refresher
	googleEnabled bool
	defaultRadius int

	mu    sync.Mutex
	pager *service.Pager
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(search *service.SearchService, refresher *service.Refresher, googleEnabled bool, defaultRadius, pageSize int) *SearchHandler {
	return &SearchHandler{
		search:        search,
		refresher:     refresher,
		googleEnabled: googleEnabled,
		defaultRadius: defaultRadius,
		pager:         service.NewPager(pageSize),
	}
}

// Search handles POST /api/search-ai
func (h *SearchHandler) Search(c *gin.Context) {
	var req model.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if req.Query == "" || req.Lat == 0 || req.Lng == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameters: query, lat, lng"})
		return
	}

	if !h.googleEnabled {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server configuration error: Missing Google API Key"})
		return
	}

	radius := req.Radius
	if radius <= 0 {
		radius = h.defaultRadius
	}

	params := service.SearchParams{
		Query:        req.Query,
		Origin:       model.Coordinate{Lat: req.Lat, Lng: req.Lng},
		Vibe:         req.Vibe,
		RadiusMeters: radius,
	}

	set, err := h.search.Search(c.Request.Context(), params, true)
	if err != nil {
		var apiErr *model.APIError
		switch {
		case errors.As(err, &apiErr):
			body := gin.H{"error": apiErr.Title}
			if apiErr.Kind != model.ErrorKindGeneric {
				body["errorType"] = apiErr.Kind
				body["message"] = apiErr.Message
			}
			c.JSON(apiErr.Status(), body)
		case errors.Is(err, service.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	h.refresher.Update(params, set)

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"searchId":   set.SearchID,
		"query":      set.Query,
		"vibe":       set.Vibe,
		"aiInsights": set.Intent,
		"places":     set.Places,
		"location":   set.Origin,
		"count":      len(set.Places),
	})
}

// LiveResults handles GET /api/live-results
func (h *SearchHandler) LiveResults(c *gin.Context) {
	mode := model.SortMode(c.DefaultQuery("sort", string(model.SortRelevance)))
	switch mode {
	case model.SortRelevance, model.SortDistance, model.SortRating, model.SortReviews:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sort mode. Must be one of: relevance, distance, rating, reviews"})
		return
	}

	set, lastUpdate := h.refresher.Snapshot()
	if set == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "places": []model.Place{}, "total": 0, "displayCount": 0, "hasMore": false})
		return
	}

	ranked := service.Rank(set.Places, mode)

	h.mu.Lock()
	display := h.pager.DisplayCount(len(ranked))
	h.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"places":       ranked[:display],
		"total":        len(ranked),
		"displayCount": display,
		"hasMore":      display < len(ranked),
		"lastUpdate":   lastUpdate,
	})
}

// LoadMore handles POST /api/live-results/more
func (h *SearchHandler) LoadMore(c *gin.Context) {
	set, _ := h.refresher.Snapshot()
	total := 0
	if set != nil {
		total = len(set.Places)
	}

	h.mu.Lock()
	display := h.pager.LoadMore(total)
	h.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"displayCount": display,
		"hasMore":      display < total,
	})
}
