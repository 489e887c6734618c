package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"selmag/manager-app/internal/app/manager/entity"
	"selmag/manager-app/internal/app/manager/infrastructure"
	"selmag/pkg/auth"
	"selmag/pkg/webclient"
)

const productsPath = "/catalogue-api/products"

type productRequest struct {
	Title   string `json:"title"`
	Details string `json:"details"`
}

// ProductsRestClient работает с Catalogue Service от имени менеджера
type ProductsRestClient struct {
	client *webclient.Client
}

func NewProductsRestClient(client *webclient.Client) *ProductsRestClient {
	return &ProductsRestClient{client: client}
}

func (c *ProductsRestClient) FindAllProducts(ctx context.Context, caller auth.Principal, filter string) ([]entity.Product, error) {
	request := webclient.Request{Method: http.MethodGet, Path: productsPath}
	if filter != "" {
		request.Query = url.Values{"filter": {filter}}
	}

	products := []entity.Product{}
	if err := c.client.Do(ctx, caller, request, &products); err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}
	return products, nil
}

func (c *ProductsRestClient) CreateProduct(ctx context.Context, caller auth.Principal, title, details string) (*entity.Product, error) {
	request := webclient.Request{
		Method: http.MethodPost,
		Path:   productsPath,
		Body:   productRequest{Title: title, Details: details},
	}

	var product entity.Product
	if err := c.client.Do(ctx, caller, request, &product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

func (c *ProductsRestClient) FindProduct(ctx context.Context, caller auth.Principal, productID int) (*entity.Product, error) {
	var product entity.Product
	err := c.client.Do(ctx, caller, webclient.Request{Method: http.MethodGet, Path: productPath(productID)}, &product)
	if err != nil {
		if errors.Is(err, webclient.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find product %d: %w", productID, err)
	}
	return &product, nil
}

func (c *ProductsRestClient) UpdateProduct(ctx context.Context, caller auth.Principal, productID int, title, details string) error {
	request := webclient.Request{
		Method: http.MethodPatch,
		Path:   productPath(productID),
		Body:   productRequest{Title: title, Details: details},
	}

	if err := c.client.Do(ctx, caller, request, nil); err != nil {
		if errors.Is(err, webclient.ErrNotFound) {
			return infrastructure.ErrProductNotFound
		}
		return fmt.Errorf("failed to update product %d: %w", productID, err)
	}
	return nil
}

func (c *ProductsRestClient) DeleteProduct(ctx context.Context, caller auth.Principal, productID int) error {
	if err := c.client.Do(ctx, caller, webclient.Request{Method: http.MethodDelete, Path: productPath(productID)}, nil); err != nil {
		return fmt.Errorf("failed to delete product %d: %w", productID, err)
	}
	return nil
}

func productPath(id int) string {
	return productsPath + "/" + strconv.Itoa(id)
}
