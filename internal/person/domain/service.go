package domain

import (
	"context"
	"errors"

	"github.com/salespulse/salespulse/pkg/db/pagination"
)

type CreatePersonRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type ListPersonsRequest struct {
	Role      string `json:"role"`
	PageToken string `json:"page_token"`
	PageSize  int32  `json:"page_size"`
}

type ListPersonsResponse struct {
	pagination.PageInfo
	Persons []Person `json:"persons"`
}

type Service interface {
	Create(context.Context, CreatePersonRequest) (*Person, error)
	List(context.Context, ListPersonsRequest) (ListPersonsResponse, error)
	Get(ctx context.Context, personID string) (*Person, error)
	Deactivate(ctx context.Context, personID string) error
}

var (
	ErrInvalidOrganization = errors.New("invalid_organization")
	ErrInvalidName         = errors.New("invalid_name")
	ErrInvalidRole         = errors.New("invalid_role")
	ErrPersonNotFound      = errors.New("person_not_found")
)
