package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	eoddomain "github.com/salespulse/salespulse/internal/eod/domain"
	"github.com/salespulse/salespulse/internal/orgcontext"
)

// SubmitEOD accepts one end-of-day report. The body is a flat object of
// string values: date, personId, forceOverwrite, and the role's metric
// fields. The response is one of three shapes: {"success":true},
// {"errors":{field:message}}, or {"existingDate":"YYYY-MM-DD"} when the
// day already has a report and the caller did not confirm the overwrite.
func (s *Server) SubmitEOD(c *gin.Context) {
	if s.eodSvc == nil {
		AbortWithError(c, ErrInternal)
		return
	}

	var payload map[string]string
	if err := c.ShouldBindJSON(&payload); err != nil {
		AbortWithError(c, newValidationError("request", "invalid_request", "body must be a flat object of string values"))
		return
	}

	ctx := c.Request.Context()

	if s.submitLimiter.Enabled() {
		orgID, _ := orgcontext.OrgIDFromContext(ctx)
		allowed, err := s.submitLimiter.AllowOrg(ctx, orgID.String())
		if err != nil {
			// Redis trouble must not block the write path.
			s.log.Warn("submission rate limiter unavailable")
			allowed = true
		}
		if !allowed {
			AbortWithError(c, ErrTooManyRequests)
			return
		}
	}

	req := eoddomain.SubmitReportRequest{
		Role:           c.Param("role"),
		PersonID:       payload["personId"],
		Date:           payload["date"],
		ForceOverwrite: parseBoolString(payload["forceOverwrite"]),
		Fields:         metricFields(payload),
	}

	result, err := s.eodSvc.Submit(ctx, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	switch {
	case len(result.Errors) > 0:
		c.JSON(http.StatusBadRequest, gin.H{"errors": result.Errors})
	case result.ExistingDate != nil:
		c.JSON(http.StatusConflict, gin.H{"existingDate": result.ExistingDate.Format(dateOnlyLayout)})
	default:
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func (s *Server) ListEODReports(c *gin.Context) {
	if s.eodSvc == nil {
		AbortWithError(c, ErrInternal)
		return
	}

	resp, err := s.eodSvc.List(c.Request.Context(), eoddomain.ListReportsRequest{
		Role:      queryString(c, "role"),
		PersonID:  queryString(c, "person_id"),
		PageToken: queryString(c, "page_token"),
		PageSize:  parsePageSize(c),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// metricFields strips the submission control keys, leaving only metric
// values for catalog validation.
func metricFields(payload map[string]string) map[string]string {
	fields := make(map[string]string, len(payload))
	for key, value := range payload {
		switch key {
		case "date", "personId", "forceOverwrite":
			continue
		}
		fields[key] = value
	}
	return fields
}
