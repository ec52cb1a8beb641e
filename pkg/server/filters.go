package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"droscher.com/RestaurantRandomizer/pkg/filters"
)

type FilterHandler struct {
	options filters.OptionSource
	logger  *zap.Logger
}

func NewFilterHandler(options filters.OptionSource, logger *zap.Logger) *FilterHandler {
	return &FilterHandler{options: options, logger: logger}
}

func (h *FilterHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/filters")

	g.GET("", h.list)
	g.GET("/resolve", h.resolve)
}

// list serves every filter option, or with type=areas|cuisines only the
// options left by the counties and areas already chosen.
func (h *FilterHandler) list(c *gin.Context) {
	ctx := c.Request.Context()
	regions := queryList(c, "counties")

	switch c.Query("type") {
	case "areas":
		areas, err := h.options.DistinctAreas(ctx, regions)
		if err != nil {
			writeError(c, requestLogger(c, h.logger), err)

			return
		}

		c.JSON(http.StatusOK, gin.H{"areas": areas})
	case "cuisines":
		cuisines, err := h.options.DistinctCuisines(ctx, regions, queryList(c, "areas"))
		if err != nil {
			writeError(c, requestLogger(c, h.logger), err)

			return
		}

		c.JSON(http.StatusOK, gin.H{"cuisines": cuisines})
	default:
		resolution, err := filters.Resolve(ctx, h.options, filters.Selection{})
		if err != nil {
			writeError(c, requestLogger(c, h.logger), err)

			return
		}

		c.JSON(http.StatusOK, gin.H{"counties": resolution.Regions, "areas": resolution.Areas, "cuisines": resolution.Cuisines})
	}
}

func (h *FilterHandler) resolve(c *gin.Context) {
	resolution, err := filters.Resolve(c.Request.Context(), h.options, filters.Selection{
		Regions:  queryList(c, "counties"),
		Areas:    queryList(c, "areas"),
		Cuisines: queryList(c, "cuisines"),
		Prices:   queryList(c, "prices"),
	})
	if err != nil {
		writeError(c, requestLogger(c, h.logger), err)

		return
	}

	c.JSON(http.StatusOK, resolution)
}
