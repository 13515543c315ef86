package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	billingdomain "github.com/salespulse/salespulse/internal/billing/domain"
)

func (s *Server) CreatePlan(c *gin.Context) {
	if s.billingSvc == nil {
		AbortWithError(c, ErrInternal)
		return
	}

	var req billingdomain.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("request", "invalid_request", "invalid request"))
		return
	}

	plan, err := s.billingSvc.CreatePlan(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, plan)
}

func (s *Server) ListPlans(c *gin.Context) {
	if s.billingSvc == nil {
		AbortWithError(c, ErrInternal)
		return
	}

	plans, err := s.billingSvc.ListPlans(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

func (s *Server) CreatePrice(c *gin.Context) {
	if s.billingSvc == nil {
		AbortWithError(c, ErrInternal)
		return
	}

	var req billingdomain.CreatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("request", "invalid_request", "invalid request"))
		return
	}

	price, err := s.billingSvc.CreatePrice(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, price)
}

func (s *Server) ListPrices(c *gin.Context) {
	if s.billingSvc == nil {
		AbortWithError(c, ErrInternal)
		return
	}

	prices, err := s.billingSvc.ListPrices(c.Request.Context(), c.Param("plan_id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"prices": prices})
}

func (s *Server) Subscribe(c *gin.Context) {
	if s.billingSvc == nil {
		AbortWithError(c, ErrInternal)
		return
	}

	var req billingdomain.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("request", "invalid_request", "invalid request"))
		return
	}

	sub, err := s.billingSvc.Subscribe(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sub)
}

func (s *Server) GetSubscription(c *gin.Context) {
	if s.billingSvc == nil {
		AbortWithError(c, ErrInternal)
		return
	}

	sub, err := s.billingSvc.GetSubscription(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

func (s *Server) CancelSubscription(c *gin.Context) {
	if s.billingSvc == nil {
		AbortWithError(c, ErrInternal)
		return
	}

	sub, err := s.billingSvc.CancelSubscription(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}
