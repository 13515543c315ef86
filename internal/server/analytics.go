package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	analyticsdomain "github.com/salespulse/salespulse/internal/analytics/domain"
)

// AnalyticsOverview aggregates stored reports for a role over the
// requested range. Unparsable custom dates fall back to the default
// window rather than erroring.
func (s *Server) AnalyticsOverview(c *gin.Context) {
	if s.analyticsSvc == nil {
		AbortWithError(c, ErrInternal)
		return
	}

	req := analyticsdomain.OverviewRequest{
		Role:      c.Param("role"),
		PersonID:  queryString(c, "personId"),
		Range:     queryString(c, "range"),
		StartDate: queryString(c, "startDate"),
		EndDate:   queryString(c, "endDate"),
		TimeZone:  queryString(c, "timeZone"),
	}

	resp, err := s.analyticsSvc.Overview(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
