package plan

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-manager/internal/api"
	"restaurant-manager/internal/config"
)

const validID = "68b1c2d3e4f5a6b7c8d9e0f1"

func newTestService(t *testing.T, handler http.Handler) (*Service, *int) {
	t.Helper()
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)
	client := api.NewClient(&config.Config{BaseURL: srv.URL, APIVersion: "/api"})
	return NewService(client), &requests
}

func TestGetRejectsMalformedIDWithoutNetworkCall(t *testing.T) {
	svc, requests := newTestService(t, http.NotFoundHandler())

	_, err := svc.Get(context.Background(), "undefined", "tok")
	assert.Equal(t, api.KindInvalidIdentifier, api.KindOf(err))
	assert.Zero(t, *requests, "guard must fire before any request")
}

func TestUpdateMealLowercasesAndPuts(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody MealUpdate
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"success":true,"message":"updated"}`))
	}))

	meals := []Meal{{Name: "Masala Dosa", Calories: 380}}
	err := svc.UpdateMeal(context.Background(), validID, "Monday", "BREAKFAST", meals, "tok")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/restaurant/plans/"+validID+"/meals", gotPath)
	assert.Equal(t, "monday", gotBody.Day)
	assert.Equal(t, "breakfast", gotBody.MealType)
	assert.Equal(t, meals, gotBody.Meals)
}

func TestListDecodesPlansAndPagination(t *testing.T) {
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{
			"plans":[{"_id":"` + validID + `","name":"Weekly Veg","pricePerWeek":799}],
			"pagination":{"currentPage":1,"totalPages":3,"totalPlans":25,"plansPerPage":10}
		}}`))
	}))

	result, err := svc.List(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, result.Plans, 1)
	assert.Equal(t, "Weekly Veg", result.Plans[0].Name)
	assert.Equal(t, 3, result.Pagination.TotalPages)

	id, err := result.Plans[0].ResolveID()
	require.NoError(t, err)
	assert.Equal(t, validID, id)
}

func TestGetResolvesLegacyIDField(t *testing.T) {
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"id":"` + validID + `","name":"Weekly Veg"}}`))
	}))

	p, err := svc.Get(context.Background(), validID, "tok")
	require.NoError(t, err)

	id, err := p.ResolveID()
	require.NoError(t, err)
	assert.Equal(t, validID, id)
}

func TestRemoveFeatureRidesQueryString(t *testing.T) {
	var gotQuery string
	var gotMethod string
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"success":true}`))
	}))

	err := svc.RemoveFeature(context.Background(), validID, "free delivery", "tok")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "feature=free+delivery", gotQuery)
}
