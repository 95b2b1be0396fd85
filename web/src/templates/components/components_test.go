package components

import (
	"strings"
	"testing"

	"github.com/postsaleshq/copilot-dash/internal/backend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"maragu.dev/gomponents"
)

func render(t *testing.T, node gomponents.Node) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, node.Render(&sb))
	return sb.String()
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$54,000", FormatCurrency(54000))
	assert.Equal(t, "$0", FormatCurrency(0))
	assert.Equal(t, "$1,250,000", FormatCurrency(1250000))
}

func TestKPICard(t *testing.T) {
	html := render(t, KPICard("Total Contracts", "12"))
	assert.Contains(t, html, "Total Contracts")
	assert.Contains(t, html, "12")
	assert.Contains(t, html, "kpi-card")
}

func TestSummaryGridHeadlineCards(t *testing.T) {
	s := &backend.Summary{
		TotalContracts:          12,
		TotalContractValue:      54000,
		ContractsExpiring30Days: 3,
		ContractsExpiring60Days: 5,
		ContractsExpiring90Days: 7,
	}

	html := render(t, SummaryGrid(s, false))

	assert.Equal(t, 3, strings.Count(html, "kpi-card"), "the headline row is exactly three cards")
	assert.Contains(t, html, ">12<")
	assert.Contains(t, html, ">$54,000<")
	assert.Contains(t, html, ">3<")
	assert.Contains(t, html, "Expiring in 60 days: 5")
	assert.Contains(t, html, "Expiring in 90 days: 7")
	assert.NotContains(t, html, "hx-swap-oob")
}

func TestSummaryGridOOB(t *testing.T) {
	html := render(t, SummaryGrid(&backend.Summary{}, true))
	assert.Contains(t, html, `hx-swap-oob="outerHTML:#summary-grid"`)
	assert.Contains(t, html, `id="summary-grid"`)
}

func TestErrorAlert(t *testing.T) {
	html := render(t, ErrorAlert("Failed to load dashboard summary: connection refused"))
	assert.Contains(t, html, "connection refused")
	assert.NotContains(t, html, "kpi-card")
}

func TestBackendStatus(t *testing.T) {
	online := render(t, BackendStatus(true, `{"status":"running"}`))
	assert.Contains(t, online, "Backend connected")
	assert.Contains(t, online, `{&#34;status&#34;:&#34;running&#34;}`)

	offline := render(t, BackendStatus(false, "connection refused"))
	assert.Contains(t, offline, "Backend offline")
}

func TestContractsTableEmpty(t *testing.T) {
	html := render(t, ContractsTable(nil))
	assert.Contains(t, html, "No contracts found.")
}

func TestContractsTableRows(t *testing.T) {
	value := 12500.0
	html := render(t, ContractsTable([]backend.Contract{
		{ID: 1, ContractNumber: "CNT-20260101120000", Title: "MSA Acme", Status: "active", TotalValue: &value},
	}))
	assert.Contains(t, html, "CNT-20260101120000")
	assert.Contains(t, html, "MSA Acme")
	assert.Contains(t, html, "$12,500")
	assert.Contains(t, html, "—")
}

func TestForecastTableSortsMonths(t *testing.T) {
	html := render(t, ForecastTable(backend.Forecast{
		"2026-11": {Count: 1, TotalValue: 1000},
		"2026-09": {Count: 2, TotalValue: 2000},
	}))
	assert.Less(t, strings.Index(html, "2026-09"), strings.Index(html, "2026-11"))
}
