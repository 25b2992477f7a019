package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/models/response_models"
	"globetrotter/pkg/utils"
)

func budgetRouter(trips stubTripService, budgets stubBudgetService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewBudgetController(budgets, trips)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", "user-1")
		c.Next()
	})
	router.GET("/api/trips/:tripId/budget", controller.GetBudget)
	router.PUT("/api/trips/:tripId/budget", controller.SetBudget)
	router.POST("/api/trips/:tripId/budget/recalculate", controller.RecalculateBudget)
	return router
}

func decodeEnvelope(t *testing.T, body *httptest.ResponseRecorder) utils.APIResponse {
	t.Helper()
	var resp utils.APIResponse
	if err := json.Unmarshal(body.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
	return resp
}

func TestGetBudgetReturnsEnvelope(t *testing.T) {
	budgets := stubBudgetService{
		getBudgetFn: func(ctx context.Context, tripId string) (*response_models.BudgetResponse, error) {
			return &response_models.BudgetResponse{TripID: tripId, TotalCost: "80.00"}, nil
		},
	}
	router := budgetRouter(stubTripService{}, budgets)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/trips/trip-1/budget", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	resp := decodeEnvelope(t, w)
	if !resp.Success {
		t.Fatalf("success = false, want true")
	}
	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("data is not an object: %T", resp.Data)
	}
	budget, ok := data["budget"].(map[string]interface{})
	if !ok {
		t.Fatalf("budget missing from data: %v", data)
	}
	if budget["total_cost"] != "80.00" {
		t.Fatalf("total_cost = %v, want 80.00", budget["total_cost"])
	}
}

func TestGetBudgetForForeignTripIsNotFound(t *testing.T) {
	trips := stubTripService{
		authorizeTripFn: func(ctx context.Context, tripId, userId string) (*db_models.Trip, error) {
			return nil, utils.ErrTripNotFound
		},
	}
	budgets := stubBudgetService{
		getBudgetFn: func(ctx context.Context, tripId string) (*response_models.BudgetResponse, error) {
			t.Fatal("budget service should not be reached without ownership")
			return nil, nil
		},
	}
	router := budgetRouter(trips, budgets)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/trips/other-trip/budget", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if resp := decodeEnvelope(t, w); resp.Success {
		t.Fatalf("success = true, want false")
	}
}

func TestSetBudgetPassesRoundedAmount(t *testing.T) {
	var got decimal.Decimal
	budgets := stubBudgetService{
		setCeilingFn: func(ctx context.Context, tripId string, amount decimal.Decimal) (*response_models.BudgetResponse, error) {
			got = amount
			return &response_models.BudgetResponse{TripID: tripId, TotalCost: amount.StringFixed(2)}, nil
		},
	}
	router := budgetRouter(stubTripService{}, budgets)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/trips/trip-1/budget", strings.NewReader(`{"totalCost": 500.005}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if want := decimal.NewFromFloat(500.01); !got.Equal(want) {
		t.Fatalf("amount = %s, want %s", got, want)
	}
}

func TestSetBudgetWithoutAmountIsUnprocessable(t *testing.T) {
	budgets := stubBudgetService{
		setCeilingFn: func(ctx context.Context, tripId string, amount decimal.Decimal) (*response_models.BudgetResponse, error) {
			t.Fatal("set ceiling should not be reached on invalid payload")
			return nil, nil
		},
	}
	router := budgetRouter(stubTripService{}, budgets)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/trips/trip-1/budget", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnprocessableEntity)
	}
	resp := decodeEnvelope(t, w)
	if resp.Success {
		t.Fatalf("success = true, want false")
	}
	fields, ok := resp.Errors.(map[string]interface{})
	if !ok {
		t.Fatalf("errors is not a field map: %T", resp.Errors)
	}
	if _, ok := fields["totalcost"]; !ok {
		t.Fatalf("errors missing totalcost key: %v", fields)
	}
}

func TestRecalculateBudgetDelegatesToService(t *testing.T) {
	recomputed := false
	budgets := stubBudgetService{
		recomputeFn: func(ctx context.Context, tripId string) (*response_models.BudgetResponse, error) {
			recomputed = true
			return &response_models.BudgetResponse{TripID: tripId, TotalCost: "42.50"}, nil
		},
	}
	router := budgetRouter(stubTripService{}, budgets)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/trips/trip-1/budget/recalculate", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !recomputed {
		t.Fatal("recompute was not invoked")
	}
}
