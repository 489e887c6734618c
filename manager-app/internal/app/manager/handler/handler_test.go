package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"selmag/manager-app/internal/app/manager/entity"
	"selmag/manager-app/internal/app/manager/infrastructure"
	"selmag/manager-app/internal/app/manager/infrastructure/mocks"
	"selmag/manager-app/internal/app/manager/messages"
	"selmag/pkg/auth"
	"selmag/pkg/problem"
	"selmag/pkg/webclient"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var jwtManager = auth.NewJWTManager("test-secret", time.Minute)

var isManager = mock.MatchedBy(func(p auth.Principal) bool {
	return p.Subject == "manager-1"
})

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter(t *testing.T) (*gin.Engine, *mocks.MockProductsRestClient) {
	t.Helper()

	msgs, err := problem.LoadMessages("ru", messages.Bundle)
	require.NoError(t, err)

	client := new(mocks.MockProductsRestClient)
	router, err := SetupRoutes(
		NewProductsHandler(client),
		NewProductHandler(client),
		auth.NewMiddleware(jwtManager),
		msgs,
		[]string{"http://localhost:8080"},
	)
	require.NoError(t, err)
	return router, client
}

func tokenWithRoles(t *testing.T, roles ...string) string {
	t.Helper()
	tok, err := jwtManager.GenerateToken("manager-1", "manager-app", []string{"openid"}, roles)
	require.NoError(t, err)
	return tok
}

func performAs(t *testing.T, router *gin.Engine, token, method, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.AddCookie(&http.Cookie{Name: auth.TokenCookie, Value: token})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func perform(t *testing.T, router *gin.Engine, method, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	return performAs(t, router, tokenWithRoles(t, RoleManager), method, target, form)
}

// ===================== access =====================

func TestPages_RequireManagerRole(t *testing.T) {
	router, client := setupRouter(t)

	rec := performAs(t, router, tokenWithRoles(t, "CUSTOMER"), http.MethodGet, "/catalogue/products/list", nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	client.AssertNotCalled(t, "FindAllProducts", mock.Anything, mock.Anything, mock.Anything)
}

// ===================== list / create =====================

func TestProductsListPage(t *testing.T) {
	router, client := setupRouter(t)
	client.On("FindAllProducts", mock.Anything, isManager, "товар").
		Return([]entity.Product{{ID: 1, Title: "Товар №1"}}, nil)

	rec := perform(t, router, http.MethodGet, "/catalogue/products/list?filter="+url.QueryEscape("товар"), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<a href="/catalogue/products/1">Товар №1</a>`)
}

func TestNewProductPage(t *testing.T) {
	router, _ := setupRouter(t)

	rec := perform(t, router, http.MethodGet, "/catalogue/products/create", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `action="/catalogue/products/create"`)
}

func TestCreateProduct_RedirectsToProduct(t *testing.T) {
	router, client := setupRouter(t)
	client.On("CreateProduct", mock.Anything, isManager, "Новый товар", "Описание").
		Return(&entity.Product{ID: 3, Title: "Новый товар", Details: "Описание"}, nil)

	rec := perform(t, router, http.MethodPost, "/catalogue/products/create",
		url.Values{"title": {"Новый товар"}, "details": {"Описание"}})

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/catalogue/products/3", rec.Header().Get("Location"))
}

func TestCreateProduct_BadRequestRerendersForm(t *testing.T) {
	router, client := setupRouter(t)
	client.On("CreateProduct", mock.Anything, isManager, "  ", "Описание").
		Return(nil, &webclient.BadRequestError{Errors: []string{"Название товара должно быть указано"}})

	rec := perform(t, router, http.MethodPost, "/catalogue/products/create",
		url.Values{"title": {"  "}, "details": {"Описание"}})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<li>Название товара должно быть указано</li>")
	assert.Contains(t, body, "Описание</textarea>")
}

func TestCreateProduct_UpstreamFailure(t *testing.T) {
	router, client := setupRouter(t)
	client.On("CreateProduct", mock.Anything, isManager, "Товар", "").Return(nil, errors.New("catalogue down"))

	rec := perform(t, router, http.MethodPost, "/catalogue/products/create", url.Values{"title": {"Товар"}})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Внутренняя ошибка сервера")
}

// ===================== product pages =====================

func TestProductPage(t *testing.T) {
	router, client := setupRouter(t)
	client.On("FindProduct", mock.Anything, isManager, 1).
		Return(&entity.Product{ID: 1, Title: "Товар №1", Details: "Описание товара №1"}, nil)

	rec := perform(t, router, http.MethodGet, "/catalogue/products/1", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<h1>Товар №1</h1>")
}

func TestProductPages_AbsentProductIs404(t *testing.T) {
	router, client := setupRouter(t)
	client.On("FindProduct", mock.Anything, isManager, 5).Return(nil, nil)

	for _, tc := range []struct {
		method string
		target string
		form   url.Values
	}{
		{http.MethodGet, "/catalogue/products/5", nil},
		{http.MethodGet, "/catalogue/products/5/edit", nil},
		{http.MethodPost, "/catalogue/products/5/edit", url.Values{"title": {"Название"}}},
		{http.MethodPost, "/catalogue/products/5/delete", url.Values{}},
	} {
		t.Run(tc.method+" "+tc.target, func(t *testing.T) {
			rec := perform(t, router, tc.method, tc.target, tc.form)

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Contains(t, rec.Body.String(), "<p>Товар не найден</p>")
		})
	}

	client.AssertNotCalled(t, "UpdateProduct", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	client.AssertNotCalled(t, "DeleteProduct", mock.Anything, mock.Anything, mock.Anything)
}

func TestEditProductPage_PrefillsProduct(t *testing.T) {
	router, client := setupRouter(t)
	client.On("FindProduct", mock.Anything, isManager, 1).
		Return(&entity.Product{ID: 1, Title: "Товар №1", Details: "Описание товара №1"}, nil)

	rec := perform(t, router, http.MethodGet, "/catalogue/products/1/edit", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `value="Товар №1"`)
}

func TestUpdateProduct_Redirects(t *testing.T) {
	router, client := setupRouter(t)
	client.On("FindProduct", mock.Anything, isManager, 1).Return(&entity.Product{ID: 1, Title: "Старое"}, nil)
	client.On("UpdateProduct", mock.Anything, isManager, 1, "Новое название", "").Return(nil)

	rec := perform(t, router, http.MethodPost, "/catalogue/products/1/edit", url.Values{"title": {"Новое название"}})

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/catalogue/products/1", rec.Header().Get("Location"))
	client.AssertExpectations(t)
}

func TestUpdateProduct_BadRequestRerendersWithPayload(t *testing.T) {
	router, client := setupRouter(t)
	client.On("FindProduct", mock.Anything, isManager, 1).Return(&entity.Product{ID: 1, Title: "Старое"}, nil)
	client.On("UpdateProduct", mock.Anything, isManager, 1, "аб", "").
		Return(&webclient.BadRequestError{Errors: []string{"Название товара должно быть от 3 до 50 символов"}})

	rec := perform(t, router, http.MethodPost, "/catalogue/products/1/edit", url.Values{"title": {"аб"}})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<li>Название товара должно быть от 3 до 50 символов</li>")
	assert.Contains(t, body, `value="аб"`)
}

func TestUpdateProduct_DeletedConcurrently(t *testing.T) {
	router, client := setupRouter(t)
	client.On("FindProduct", mock.Anything, isManager, 1).Return(&entity.Product{ID: 1}, nil)
	client.On("UpdateProduct", mock.Anything, isManager, 1, "Название", "").Return(infrastructure.ErrProductNotFound)

	rec := perform(t, router, http.MethodPost, "/catalogue/products/1/edit", url.Values{"title": {"Название"}})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProduct_RedirectsToList(t *testing.T) {
	router, client := setupRouter(t)
	client.On("FindProduct", mock.Anything, isManager, 1).Return(&entity.Product{ID: 1}, nil)
	client.On("DeleteProduct", mock.Anything, isManager, 1).Return(nil)

	rec := perform(t, router, http.MethodPost, "/catalogue/products/1/delete", url.Values{})

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/catalogue/products/list", rec.Header().Get("Location"))
}

func TestProductPage_NonNumericID(t *testing.T) {
	router, client := setupRouter(t)

	rec := perform(t, router, http.MethodGet, "/catalogue/products/abc", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	client.AssertNotCalled(t, "FindProduct", mock.Anything, mock.Anything, mock.Anything)
}
