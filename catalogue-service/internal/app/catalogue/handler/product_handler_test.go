package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"selmag/catalogue-service/internal/app/catalogue/entity"
	"selmag/catalogue-service/internal/app/catalogue/messages"
	"selmag/catalogue-service/internal/app/catalogue/service"
	"selmag/pkg/auth"
	"selmag/pkg/problem"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) FindAllProducts(ctx context.Context, filter string) ([]entity.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Product), args.Error(1)
}

func (m *MockProductService) CreateProduct(ctx context.Context, title, details string) (*entity.Product, error) {
	args := m.Called(ctx, title, details)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductService) FindProduct(ctx context.Context, id int) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductService) UpdateProduct(ctx context.Context, id int, title, details string) error {
	args := m.Called(ctx, id, title, details)
	return args.Error(0)
}

func (m *MockProductService) DeleteProduct(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

const testSecret = "test-secret"

var jwtManager = auth.NewJWTManager(testSecret, time.Minute)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter(t *testing.T) (*gin.Engine, *MockProductService) {
	t.Helper()

	msgs, err := problem.LoadMessages("ru", messages.Bundle)
	require.NoError(t, err)

	mockService := new(MockProductService)
	router := SetupRoutes(NewProductHandler(mockService), auth.NewMiddleware(jwtManager), msgs)
	return router, mockService
}

func token(t *testing.T, scopes ...string) string {
	t.Helper()
	tok, err := jwtManager.GenerateToken("manager-1", "", scopes, nil)
	require.NoError(t, err)
	return "Bearer " + tok
}

func perform(router *gin.Engine, method, target, body, authorization string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeProblem(t *testing.T, rec *httptest.ResponseRecorder) problem.Problem {
	t.Helper()
	assert.Equal(t, problem.ContentType, rec.Header().Get("Content-Type"))
	var body problem.Problem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// ===================== GET /catalogue-api/products =====================

func TestFindProducts_PassesFilter(t *testing.T) {
	router, mockService := setupRouter(t)
	mockService.On("FindAllProducts", mock.Anything, "товар").Return([]entity.Product{
		{ID: 1, Title: "Товар №1", Details: "Описание товара №1"},
	}, nil)

	rec := perform(router, http.MethodGet, "/catalogue-api/products?filter="+url.QueryEscape("товар"), "", token(t, ScopeViewCatalogue))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"title":"Товар №1","details":"Описание товара №1"}]`, rec.Body.String())
}

func TestFindProducts_EmptyArray(t *testing.T) {
	router, mockService := setupRouter(t)
	mockService.On("FindAllProducts", mock.Anything, "").Return(nil, nil)

	rec := perform(router, http.MethodGet, "/catalogue-api/products", "", token(t, ScopeViewCatalogue))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", rec.Body.String())
}

func TestFindProducts_Unauthenticated(t *testing.T) {
	router, mockService := setupRouter(t)

	rec := perform(router, http.MethodGet, "/catalogue-api/products", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, http.StatusUnauthorized, decodeProblem(t, rec).Status)
	mockService.AssertNotCalled(t, "FindAllProducts", mock.Anything, mock.Anything)
}

// ===================== POST /catalogue-api/products =====================

func TestCreateProduct_Created(t *testing.T) {
	router, mockService := setupRouter(t)
	mockService.On("CreateProduct", mock.Anything, "Новый товар", "Описание нового товара").
		Return(&entity.Product{ID: 1, Title: "Новый товар", Details: "Описание нового товара"}, nil)

	rec := perform(router, http.MethodPost, "/catalogue-api/products",
		`{"title":"Новый товар","details":"Описание нового товара"}`, token(t, ScopeEditCatalogue))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "http://example.com/catalogue-api/products/1", rec.Header().Get("Location"))
	assert.JSONEq(t, `{"id":1,"title":"Новый товар","details":"Описание нового товара"}`, rec.Body.String())
}

func TestCreateProduct_InvalidPayload(t *testing.T) {
	router, mockService := setupRouter(t)

	rec := perform(router, http.MethodPost, "/catalogue-api/products",
		`{"title":"  ","details":null}`, token(t, ScopeEditCatalogue))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeProblem(t, rec)
	assert.Equal(t, []string{"Название товара должно быть указано"}, body.Errors)
	mockService.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateProduct_MalformedJSON(t *testing.T) {
	router, _ := setupRouter(t)

	rec := perform(router, http.MethodPost, "/catalogue-api/products", `{"title":`, token(t, ScopeEditCatalogue))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProduct_RequiresEditScope(t *testing.T) {
	router, _ := setupRouter(t)

	rec := perform(router, http.MethodPost, "/catalogue-api/products",
		`{"title":"Новый товар"}`, token(t, ScopeViewCatalogue))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

// ===================== GET /catalogue-api/products/:id =====================

func TestFindProduct_ExactJSON(t *testing.T) {
	router, mockService := setupRouter(t)
	mockService.On("FindProduct", mock.Anything, 1).
		Return(&entity.Product{ID: 1, Title: "Товар №1", Details: "Описание товара №1"}, nil)

	rec := perform(router, http.MethodGet, "/catalogue-api/products/1", "", token(t, ScopeViewCatalogue))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"id":1,"title":"Товар №1","details":"Описание товара №1"}`, rec.Body.String())
}

func TestFindProduct_Absent(t *testing.T) {
	router, mockService := setupRouter(t)
	mockService.On("FindProduct", mock.Anything, 5).Return(nil, nil)

	rec := perform(router, http.MethodGet, "/catalogue-api/products/5", "", token(t, ScopeViewCatalogue))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeProblem(t, rec)
	assert.Equal(t, "Товар не найден", body.Detail)
	assert.Equal(t, "Not Found", body.Title)
}

func TestFindProduct_NonNumericID(t *testing.T) {
	router, mockService := setupRouter(t)

	rec := perform(router, http.MethodGet, "/catalogue-api/products/abc", "", token(t, ScopeViewCatalogue))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	mockService.AssertNotCalled(t, "FindProduct", mock.Anything, mock.Anything)
}

func TestFindProduct_ServiceError(t *testing.T) {
	router, mockService := setupRouter(t)
	mockService.On("FindProduct", mock.Anything, 1).Return(nil, errors.New("db down"))

	rec := perform(router, http.MethodGet, "/catalogue-api/products/1", "", token(t, ScopeViewCatalogue))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, http.StatusInternalServerError, decodeProblem(t, rec).Status)
}

// ===================== PATCH /catalogue-api/products/:id =====================

func TestUpdateProduct_NoContent(t *testing.T) {
	router, mockService := setupRouter(t)
	mockService.On("UpdateProduct", mock.Anything, 1, "Новое название", "Новое описание").Return(nil)

	rec := perform(router, http.MethodPatch, "/catalogue-api/products/1",
		`{"title":"Новое название","details":"Новое описание"}`, token(t, ScopeEditCatalogue))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	mockService.AssertExpectations(t)
}

func TestUpdateProduct_Absent(t *testing.T) {
	router, mockService := setupRouter(t)
	mockService.On("UpdateProduct", mock.Anything, 5, "Новое название", "").Return(service.ErrProductNotFound)

	rec := perform(router, http.MethodPatch, "/catalogue-api/products/5",
		`{"title":"Новое название"}`, token(t, ScopeEditCatalogue))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Товар не найден", decodeProblem(t, rec).Detail)
}

func TestUpdateProduct_InvalidPayload(t *testing.T) {
	router, mockService := setupRouter(t)

	rec := perform(router, http.MethodPatch, "/catalogue-api/products/1",
		`{"title":"аб"}`, token(t, ScopeEditCatalogue))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"Название товара должно быть от 3 до 50 символов"}, decodeProblem(t, rec).Errors)
	mockService.AssertNotCalled(t, "UpdateProduct", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// ===================== DELETE /catalogue-api/products/:id =====================

func TestDeleteProduct_AlwaysNoContent(t *testing.T) {
	router, mockService := setupRouter(t)
	mockService.On("DeleteProduct", mock.Anything, 5).Return(nil)

	rec := perform(router, http.MethodDelete, "/catalogue-api/products/5", "", token(t, ScopeEditCatalogue))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	mockService.AssertExpectations(t)
}

func TestUnknownRoute(t *testing.T) {
	router, _ := setupRouter(t)

	rec := perform(router, http.MethodGet, "/unknown", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Ресурс не найден", decodeProblem(t, rec).Detail)
}
