package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"selmag/customer-app/internal/app/customer/entity"
	"selmag/pkg/auth"
	"selmag/pkg/webclient"
)

const productsPath = "/catalogue-api/products"

// ProductsClient читает товары из Catalogue Service
type ProductsClient struct {
	client *webclient.Client
}

func NewProductsClient(client *webclient.Client) *ProductsClient {
	return &ProductsClient{client: client}
}

func (c *ProductsClient) FindAllProducts(ctx context.Context, caller auth.Principal, filter string) ([]entity.Product, error) {
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

func (c *ProductsClient) FindProduct(ctx context.Context, caller auth.Principal, productID int) (*entity.Product, error) {
	request := webclient.Request{
		Method: http.MethodGet,
		Path:   productsPath + "/" + strconv.Itoa(productID),
	}

	var product entity.Product
	if err := c.client.Do(ctx, caller, request, &product); err != nil {
		if errors.Is(err, webclient.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find product %d: %w", productID, err)
	}
	return &product, nil
}
