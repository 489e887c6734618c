package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"selmag/customer-app/internal/app/customer/entity"
	"selmag/pkg/auth"
	"selmag/pkg/webclient"
)

const favouriteProductsPath = "/feedback-api/favourite-products"

type newFavouriteProductRequest struct {
	ProductID int `json:"productId"`
}

// FavouriteProductsClient работает с избранным Feedback Service.
// Пользователь определяется по токену вызывающего.
type FavouriteProductsClient struct {
	client *webclient.Client
}

func NewFavouriteProductsClient(client *webclient.Client) *FavouriteProductsClient {
	return &FavouriteProductsClient{client: client}
}

func (c *FavouriteProductsClient) FindFavouriteProducts(ctx context.Context, caller auth.Principal) ([]entity.FavouriteProduct, error) {
	request := webclient.Request{Method: http.MethodGet, Path: favouriteProductsPath}

	favourites := []entity.FavouriteProduct{}
	if err := c.client.Do(ctx, caller, request, &favourites); err != nil {
		return nil, fmt.Errorf("failed to find favourite products: %w", err)
	}
	return favourites, nil
}

// FindFavouriteProductByProductID: 404 означает, что товара нет в избранном
func (c *FavouriteProductsClient) FindFavouriteProductByProductID(ctx context.Context, caller auth.Principal, productID int) (*entity.FavouriteProduct, error) {
	request := webclient.Request{
		Method: http.MethodGet,
		Path:   favouriteProductsPath + "/by-product-id/" + strconv.Itoa(productID),
	}

	var favourite entity.FavouriteProduct
	if err := c.client.Do(ctx, caller, request, &favourite); err != nil {
		if errors.Is(err, webclient.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find favourite product %d: %w", productID, err)
	}
	return &favourite, nil
}

func (c *FavouriteProductsClient) AddProductToFavourites(ctx context.Context, caller auth.Principal, productID int) (*entity.FavouriteProduct, error) {
	request := webclient.Request{
		Method: http.MethodPost,
		Path:   favouriteProductsPath,
		Body:   newFavouriteProductRequest{ProductID: productID},
	}

	var favourite entity.FavouriteProduct
	if err := c.client.Do(ctx, caller, request, &favourite); err != nil {
		return nil, fmt.Errorf("failed to add product %d to favourites: %w", productID, err)
	}
	return &favourite, nil
}

func (c *FavouriteProductsClient) RemoveProductFromFavourites(ctx context.Context, caller auth.Principal, productID int) error {
	request := webclient.Request{
		Method: http.MethodDelete,
		Path:   favouriteProductsPath + "/by-product-id/" + strconv.Itoa(productID),
	}

	if err := c.client.Do(ctx, caller, request, nil); err != nil {
		return fmt.Errorf("failed to remove product %d from favourites: %w", productID, err)
	}
	return nil
}
