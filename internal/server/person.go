package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	persondomain "github.com/salespulse/salespulse/internal/person/domain"
)

func (s *Server) CreatePerson(c *gin.Context) {
	if s.personSvc == nil {
		AbortWithError(c, ErrInternal)
		return
	}

	var req persondomain.CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("request", "invalid_request", "invalid request"))
		return
	}

	person, err := s.personSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, person)
}

func (s *Server) ListPersons(c *gin.Context) {
	if s.personSvc == nil {
		AbortWithError(c, ErrInternal)
		return
	}

	resp, err := s.personSvc.List(c.Request.Context(), persondomain.ListPersonsRequest{
		Role:      queryString(c, "role"),
		PageToken: queryString(c, "page_token"),
		PageSize:  parsePageSize(c),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) GetPerson(c *gin.Context) {
	if s.personSvc == nil {
		AbortWithError(c, ErrInternal)
		return
	}

	person, err := s.personSvc.Get(c.Request.Context(), c.Param("person_id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, person)
}

func (s *Server) DeactivatePerson(c *gin.Context) {
	if s.personSvc == nil {
		AbortWithError(c, ErrInternal)
		return
	}

	if err := s.personSvc.Deactivate(c.Request.Context(), c.Param("person_id")); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
