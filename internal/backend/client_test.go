package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second)
}

func TestSummary(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/dashboard/summary", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"total_contracts": 12,
			"contracts_expiring_30_days": 3,
			"contracts_expiring_60_days": 5,
			"contracts_expiring_90_days": 7,
			"total_contract_value": 54000,
			"payment_reminders": [{"contract_id": 1, "contract_number": "CNT-1", "amount": 1200.5}],
			"recent_activities": [{"type": "contract_added", "details": "New contract: MSA"}]
		}`))
	})

	summary, err := client.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 12, summary.TotalContracts)
	assert.Equal(t, 3, summary.ContractsExpiring30Days)
	assert.Equal(t, 5, summary.ContractsExpiring60Days)
	assert.Equal(t, 7, summary.ContractsExpiring90Days)
	assert.Equal(t, 54000.0, summary.TotalContractValue)
	require.Len(t, summary.PaymentReminders, 1)
	assert.Equal(t, "CNT-1", summary.PaymentReminders[0].ContractNumber)
	require.Len(t, summary.RecentActivities, 1)
	assert.Equal(t, "contract_added", summary.RecentActivities[0].Type)
}

func TestRootIsOpaque(t *testing.T) {
	payload := `{"name":"AI Post-Sales Copilot","version":"1.0.0","status":"running"}`
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/", r.URL.Path)
		w.Write([]byte(payload))
	})

	raw, err := client.Root(context.Background())
	require.NoError(t, err)

	// The root payload must survive as-is so it can be re-stringified.
	assert.JSONEq(t, payload, string(raw))
}

func TestMetrics(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/dashboard/metrics", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"contracts": {"total_active": 9, "total_expired": 3, "avg_value": 6000, "total_value": 54000},
			"customers": {"total": 6, "with_active_contracts": 5, "top_by_value": [{"name": "Acme", "value": 20000}]},
			"payments": {"upcoming_30_days": 4, "overdue": 1, "total_expected": 8800.5}
		}`))
	})

	m, err := client.Metrics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 9, m.Contracts.TotalActive)
	assert.Equal(t, 3, m.Contracts.TotalExpired)
	assert.Equal(t, 6000.0, m.Contracts.AvgValue)
	assert.Equal(t, 54000.0, m.Contracts.TotalValue)
	assert.Equal(t, 6, m.Customers.Total)
	assert.Equal(t, 5, m.Customers.WithActiveContracts)
	require.Len(t, m.Customers.TopByValue, 1)
	assert.Equal(t, "Acme", m.Customers.TopByValue[0].Name)
	assert.Equal(t, 20000.0, m.Customers.TopByValue[0].Value)
	assert.Equal(t, 4, m.Payments.Upcoming30Days)
	assert.Equal(t, 1, m.Payments.Overdue)
	assert.Equal(t, 8800.5, m.Payments.TotalExpected)
}

func TestListContractsQueryParams(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/contracts/", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("skip"))
		assert.Equal(t, "25", r.URL.Query().Get("limit"))
		assert.Equal(t, "active", r.URL.Query().Get("status"))
		w.Write([]byte(`[{"id": 7, "contract_number": "CNT-7", "status": "active"}]`))
	})

	contracts, err := client.ListContracts(context.Background(), ListOptions{Skip: 10, Limit: 25, Status: "active"})
	require.NoError(t, err)
	require.Len(t, contracts, 1)
	assert.Equal(t, 7, contracts[0].ID)
	assert.Equal(t, "CNT-7", contracts[0].ContractNumber)
}

func TestAPIErrorDetail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "Contract not found"}`))
	})

	_, err := client.GetContract(context.Background(), 42)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Contract not found", apiErr.Detail)
	assert.Contains(t, err.Error(), "Contract not found")
}

func TestAPIErrorFallsBackToRawBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream unavailable"))
	})

	_, err := client.Summary(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "upstream unavailable", apiErr.Detail)
}

func TestContextCancellation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Summary(ctx)
	require.Error(t, err)
}
