package backend

import "time"

// Summary is the dashboard metrics payload returned by
// GET /api/dashboard/summary.
type Summary struct {
	TotalContracts          int               `json:"total_contracts"`
	ContractsExpiring30Days int               `json:"contracts_expiring_30_days"`
	ContractsExpiring60Days int               `json:"contracts_expiring_60_days"`
	ContractsExpiring90Days int               `json:"contracts_expiring_90_days"`
	TotalContractValue      float64           `json:"total_contract_value"`
	PaymentReminders        []PaymentReminder `json:"payment_reminders"`
	RecentActivities        []Activity        `json:"recent_activities"`
}

// PaymentReminder is one upcoming payment entry inside the summary payload.
type PaymentReminder struct {
	ContractID      int     `json:"contract_id"`
	ContractNumber  string  `json:"contract_number"`
	CustomerID      int     `json:"customer_id"`
	NextPaymentDate string  `json:"next_payment_date"`
	Amount          float64 `json:"amount"`
	PaymentTerms    string  `json:"payment_terms"`
}

// Activity is one entry of the summary's recent activity feed. The backend
// mixes CRM sync events and contract additions in the same list, so most
// fields are optional.
type Activity struct {
	Type           string `json:"type"`
	Timestamp      string `json:"timestamp"`
	Details        string `json:"details"`
	Source         string `json:"source,omitempty"`
	AccountName    string `json:"account_name,omitempty"`
	ContractNumber string `json:"contract_number,omitempty"`
}

// Contract is a single contract record from GET /api/contracts/.
type Contract struct {
	ID               int        `json:"id"`
	CustomerID       int        `json:"customer_id"`
	ContractNumber   string     `json:"contract_number"`
	Title            string     `json:"title"`
	StartDate        *time.Time `json:"start_date"`
	RenewalDate      *time.Time `json:"renewal_date"`
	EndDate          *time.Time `json:"end_date"`
	TotalValue       *float64   `json:"total_value"`
	PaymentTerms     *string    `json:"payment_terms"`
	PaymentFrequency *string    `json:"payment_frequency"`
	Obligations      []string   `json:"obligations"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// ForecastContract is a contract reference inside a forecast month.
type ForecastContract struct {
	ID     int      `json:"id"`
	Number string   `json:"number"`
	Value  *float64 `json:"value"`
}

// ForecastMonth aggregates the contracts renewing in one calendar month.
type ForecastMonth struct {
	Count      int                `json:"count"`
	TotalValue float64            `json:"total_value"`
	Contracts  []ForecastContract `json:"contracts"`
}

// Forecast maps "YYYY-MM" month keys to their renewal aggregates, as
// returned by GET /api/dashboard/renewal-forecast.
type Forecast map[string]ForecastMonth

// ContractMetrics aggregates contract figures inside the detailed metrics
// payload.
type ContractMetrics struct {
	TotalActive  int     `json:"total_active"`
	TotalExpired int     `json:"total_expired"`
	AvgValue     float64 `json:"avg_value"`
	TotalValue   float64 `json:"total_value"`
}

// TopCustomer is one entry of the top-customers-by-value list.
type TopCustomer struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// CustomerMetrics aggregates customer figures inside the detailed metrics
// payload.
type CustomerMetrics struct {
	Total               int           `json:"total"`
	WithActiveContracts int           `json:"with_active_contracts"`
	TopByValue          []TopCustomer `json:"top_by_value"`
}

// PaymentMetrics aggregates payment figures inside the detailed metrics
// payload.
type PaymentMetrics struct {
	Upcoming30Days int     `json:"upcoming_30_days"`
	Overdue        int     `json:"overdue"`
	TotalExpected  float64 `json:"total_expected"`
}

// BusinessMetrics is the detailed metrics payload returned by
// GET /api/dashboard/metrics.
type BusinessMetrics struct {
	Contracts ContractMetrics `json:"contracts"`
	Customers CustomerMetrics `json:"customers"`
	Payments  PaymentMetrics  `json:"payments"`
}

// ListOptions are the query parameters accepted by the contract list
// endpoint. Zero values are omitted from the request.
type ListOptions struct {
	Skip   int
	Limit  int
	Status string
}
