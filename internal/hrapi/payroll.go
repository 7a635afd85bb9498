package hrapi

import (
	"context"
	"fmt"

	"github.com/spec-kit/hr-console/internal/domain"
	"github.com/spec-kit/hr-console/internal/gateway"
)

// PayrollAPI covers the admin-only payment collection and its reports.
type PayrollAPI struct {
	client *gateway.Client
}

// NewPayrollAPI builds the wrapper.
func NewPayrollAPI(client *gateway.Client) *PayrollAPI {
	return &PayrollAPI{client: client}
}

// PayrollRequest is the create/update payload.
type PayrollRequest struct {
	EmployeeID int     `json:"employee_id"`
	BaseSalary float64 `json:"base_salary"`
	Bonus      float64 `json:"bonus"`
	Deductions float64 `json:"deductions"`
	PayMonth   int     `json:"pay_month"`
	PayYear    int     `json:"pay_year"`
}

// DeductLeaveRequest asks the service to price unpaid leave days.
type DeductLeaveRequest struct {
	EmployeeID    int     `json:"employee_id"`
	BaseSalary    float64 `json:"base_salary"`
	TotalWorkDays int     `json:"total_work_days"`
	Month         int     `json:"month"`
	Year          int     `json:"year"`
}

// PayrollSummary is the shape of the monthly/yearly report rows.
type PayrollSummary struct {
	Month          int     `json:"month,omitempty"`
	Year           int     `json:"year"`
	TotalNetSalary float64 `json:"total_net_salary"`
	TotalBonus     float64 `json:"total_bonus"`
	TotalDeduction float64 `json:"total_deduction"`
	EmployeeCount  int     `json:"employee_count"`
}

// List fetches all payment rows.
func (p *PayrollAPI) List(ctx context.Context) ([]domain.PayrollRecord, error) {
	var out []domain.PayrollRecord
	if err := p.client.Get(ctx, "/payment", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one payment row.
func (p *PayrollAPI) Get(ctx context.Context, id int) (*domain.PayrollRecord, error) {
	var out domain.PayrollRecord
	if err := p.client.Get(ctx, fmt.Sprintf("/payment/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create adds a payment row.
func (p *PayrollAPI) Create(ctx context.Context, req PayrollRequest) (*domain.PayrollRecord, error) {
	var out domain.PayrollRecord
	if err := p.client.Post(ctx, "/payment", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces a payment row.
func (p *PayrollAPI) Update(ctx context.Context, id int, req PayrollRequest) (*domain.PayrollRecord, error) {
	var out domain.PayrollRecord
	if err := p.client.Put(ctx, fmt.Sprintf("/payment/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a payment row.
func (p *PayrollAPI) Delete(ctx context.Context, id int) error {
	return p.client.Delete(ctx, fmt.Sprintf("/payment/%d", id))
}

// MonthlyReport fetches the aggregated month summary.
func (p *PayrollAPI) MonthlyReport(ctx context.Context, year, month int) (*PayrollSummary, error) {
	var out PayrollSummary
	path := fmt.Sprintf("/payment/report/monthly?year=%d&month=%d", year, month)
	if err := p.client.Get(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// YearlyReport fetches the aggregated year summary.
func (p *PayrollAPI) YearlyReport(ctx context.Context, year int) (*PayrollSummary, error) {
	var out PayrollSummary
	if err := p.client.Get(ctx, fmt.Sprintf("/payment/report/yearly?year=%d", year), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeductLeave asks the service for the leave deduction amount.
func (p *PayrollAPI) DeductLeave(ctx context.Context, req DeductLeaveRequest) (float64, error) {
	var out struct {
		Deduction float64 `json:"deduction"`
	}
	if err := p.client.Post(ctx, "/payment/deduct-leave", req, &out); err != nil {
		return 0, err
	}
	return out.Deduction, nil
}
