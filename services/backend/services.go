package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"nepwork/models"
)

// ListServices returns the public, active services, optionally narrowed by
// category slug and title search on the backend side.
func (c *Client) ListServices(ctx context.Context, sess *models.Session, category, query string) ([]models.Service, error) {
	params := url.Values{}
	if category != "" {
		params.Set("category", category)
	}
	if query != "" {
		params.Set("q", query)
	}
	path := "/services/services/"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	services := []models.Service{}
	if err := c.getJSON(ctx, sess, path, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// MyServices returns the services owned by the calling provider.
func (c *Client) MyServices(ctx context.Context, sess *models.Session) ([]models.Service, error) {
	services := []models.Service{}
	if err := c.getJSON(ctx, sess, "/services/services/my/", &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (c *Client) ListCategories(ctx context.Context, sess *models.Session) ([]models.Category, error) {
	categories := []models.Category{}
	if err := c.getJSON(ctx, sess, "/services/categories/", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateService publishes a listing for the calling provider. The backend
// answers 403 with kyc_required when verification is not approved.
func (c *Client) CreateService(ctx context.Context, sess *models.Session, in models.ServiceInput) (*models.Service, error) {
	var created models.Service
	if err := c.sendJSON(ctx, sess, http.MethodPost, "/services/services/create/", in, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ServiceDetail returns one service with its recent reviews.
func (c *Client) ServiceDetail(ctx context.Context, sess *models.Session, id int64) (*models.Service, error) {
	var service models.Service
	if err := c.getJSON(ctx, sess, fmt.Sprintf("/services/services/%d/detail/", id), &service); err != nil {
		return nil, err
	}
	return &service, nil
}
