package handler

import (
	"net/http"
	"testing"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	mockUsecase "crm/internal/mocks/usecase"
	"crm/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type catalogHandlerFixtures struct {
	e         *echo.Echo
	catalogUC *mockUsecase.MockCatalogUsecase
	userUC    *mockUsecase.MockUserUsecase
}

func createTestCatalogHandler(t *testing.T) catalogHandlerFixtures {
	catalogUC := mockUsecase.NewMockCatalogUsecase(t)
	userUC := mockUsecase.NewMockUserUsecase(t)
	h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC, UserUC: userUC, Logger: newDiscardLogger()})

	e := newTestEcho(managerClaims)
	e.GET("/branches", h.ListBranches)
	e.POST("/branches", h.SaveBranch)
	e.GET("/products", h.ListProducts)
	e.POST("/products", h.SaveProduct)
	e.GET("/inquiries", h.ListInquiries)
	e.POST("/inquiries", h.AddInquiry)
	e.GET("/users", h.ListUsers)
	e.POST("/users", h.SaveUser)

	return catalogHandlerFixtures{e: e, catalogUC: catalogUC, userUC: userUC}
}

func TestCatalogHandler_Branches(t *testing.T) {
	fx := createTestCatalogHandler(t)

	fx.catalogUC.EXPECT().ListBranches(mock.Anything).Return([]entity.Branch{{ID: "branch-1"}}, nil)

	rec := serveJSON(t, fx.e, http.MethodGet, "/branches", nil)
	mustStatus(t, rec, http.StatusOK)

	fx.catalogUC.EXPECT().SaveBranch(mock.Anything, manager, entity.Branch{Name: "Mall"}).
		Return(&entity.Branch{ID: "branch-2", Name: "Mall"}, nil)

	rec = serveJSON(t, fx.e, http.MethodPost, "/branches", entity.Branch{Name: "Mall"})
	mustStatus(t, rec, http.StatusOK)

	var branch entity.Branch
	decodeSuccess(t, rec, &branch)
	assert.Equal(t, "branch-2", branch.ID)
}

func TestCatalogHandler_Products(t *testing.T) {
	fx := createTestCatalogHandler(t)

	fx.catalogUC.EXPECT().ListProducts(mock.Anything, true).Return([]entity.Product{{ID: "P-1"}}, nil)

	rec := serveJSON(t, fx.e, http.MethodGet, "/products?lowStock=true", nil)
	mustStatus(t, rec, http.StatusOK)

	rec = serveJSON(t, fx.e, http.MethodGet, "/products?lowStock=maybe", nil)
	mustStatus(t, rec, http.StatusBadRequest)

	fx.catalogUC.EXPECT().SaveProduct(mock.Anything, manager, mock.AnythingOfType("entity.Product")).
		Return(nil, domainerrors.ErrPermissionDenied)

	rec = serveJSON(t, fx.e, http.MethodPost, "/products", entity.Product{Name: "Scarf"})
	mustStatus(t, rec, http.StatusForbidden)
}

func TestCatalogHandler_Inquiries(t *testing.T) {
	fx := createTestCatalogHandler(t)

	fx.catalogUC.EXPECT().ListInquiries(mock.Anything).Return(nil, nil)

	rec := serveJSON(t, fx.e, http.MethodGet, "/inquiries", nil)
	mustStatus(t, rec, http.StatusOK)

	fx.catalogUC.EXPECT().AddInquiry(mock.Anything, manager, mock.AnythingOfType("entity.DailyInquiry")).
		Return(&entity.DailyInquiry{ID: "INQ-1"}, nil)

	rec = serveJSON(t, fx.e, http.MethodPost, "/inquiries", map[string]string{"productInquiry": "Blue scarf"})
	mustStatus(t, rec, http.StatusCreated)
}

func TestCatalogHandler_Users(t *testing.T) {
	fx := createTestCatalogHandler(t)

	fx.userUC.EXPECT().List(mock.Anything).Return([]entity.User{{ID: "user-1"}}, nil)

	rec := serveJSON(t, fx.e, http.MethodGet, "/users", nil)
	mustStatus(t, rec, http.StatusOK)

	in := usecase.UserInput{Name: "Sara", Username: "sara", Password: "pw", Role: entity.RoleStaff}
	fx.userUC.EXPECT().Save(mock.Anything, manager, in).Return(&entity.User{ID: "user-9", Name: "Sara"}, nil)

	rec = serveJSON(t, fx.e, http.MethodPost, "/users", in)
	mustStatus(t, rec, http.StatusOK)

	rec = serveJSON(t, fx.e, http.MethodPost, "/users", usecase.UserInput{Name: "Sara"})
	mustStatus(t, rec, http.StatusBadRequest)

	fx.userUC.EXPECT().Save(mock.Anything, manager, mock.Anything).Return(nil, domainerrors.ErrUsernameTaken)

	rec = serveJSON(t, fx.e, http.MethodPost, "/users", usecase.UserInput{Name: "Sara", Username: "hala", Role: entity.RoleStaff})
	mustStatus(t, rec, http.StatusConflict)
}
