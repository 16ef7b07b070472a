package order

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

func newTestService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := api.NewClient(&config.Config{BaseURL: srv.URL, APIVersion: "/api"})
	return NewService(client)
}

func TestListDefaultsAndQuery(t *testing.T) {
	var gotQuery map[string][]string
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"success":true,"data":{"orders":[],"pagination":{"currentPage":1,"totalPages":0,"totalOrders":0}}}`))
	})

	t.Run("zero options fall back to defaults", func(t *testing.T) {
		_, err := svc.List(context.Background(), ListOptions{}, "tok")
		require.NoError(t, err)
		assert.Equal(t, []string{"1"}, gotQuery["page"])
		assert.Equal(t, []string{"10"}, gotQuery["limit"])
		assert.NotContains(t, gotQuery, "status")
	})

	t.Run("status filter is passed through", func(t *testing.T) {
		_, err := svc.List(context.Background(), ListOptions{Status: StatusPreparing, Page: 2, Limit: 25}, "tok")
		require.NoError(t, err)
		assert.Equal(t, []string{"preparing"}, gotQuery["status"])
		assert.Equal(t, []string{"2"}, gotQuery["page"])
		assert.Equal(t, []string{"25"}, gotQuery["limit"])
	})

	t.Run("unknown status is rejected locally", func(t *testing.T) {
		_, err := svc.List(context.Background(), ListOptions{Status: "shipped"}, "tok")
		assert.Error(t, err)
	})
}

func TestUpdateStatus(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]string
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"success":true}`))
	})

	err := svc.UpdateStatus(context.Background(), validID, StatusReady, "tok")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/api/orders/"+validID+"/status", gotPath)
	assert.Equal(t, map[string]string{"status": "ready"}, gotBody)

	t.Run("invalid status rejected before network", func(t *testing.T) {
		err := svc.UpdateStatus(context.Background(), validID, "eaten", "tok")
		assert.Error(t, err)
	})

	t.Run("malformed id rejected before network", func(t *testing.T) {
		err := svc.UpdateStatus(context.Background(), "null", StatusReady, "tok")
		assert.Equal(t, api.KindInvalidIdentifier, api.KindOf(err))
	})
}

func TestCustomerIDHandlesBothWireForms(t *testing.T) {
	t.Run("bare string", func(t *testing.T) {
		o := Order{Customer: json.RawMessage(`"` + validID + `"`)}
		assert.Equal(t, validID, o.CustomerID())
	})

	t.Run("embedded record", func(t *testing.T) {
		o := Order{Customer: json.RawMessage(`{"_id":"` + validID + `","firstName":"Asha"}`)}
		assert.Equal(t, validID, o.CustomerID())
	})

	t.Run("absent", func(t *testing.T) {
		var o Order
		assert.Empty(t, o.CustomerID())
	})
}

func TestStatsDecodes(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{
			"statusCounts":{"pending":4,"delivered":120},
			"totals":{"totalOrders":124,"totalRevenue":51240.5,"avgOrderValue":413.2},
			"dailyOrders":[{"_id":"2025-08-30","count":12,"revenue":4980}]
		}}`))
	})

	st, err := svc.Stats(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, 4, st.StatusCounts["pending"])
	assert.Equal(t, 124, st.Totals.TotalOrders)
	require.Len(t, st.DailyOrders, 1)
	assert.Equal(t, "2025-08-30", st.DailyOrders[0].Date)
}
