package dto

import (
	"github.com/gestaoerp/ledger_backend/internal/core/domain"
)

// CreateAccountRequest defines the payload for creating a chart-of-accounts entry.
type CreateAccountRequest struct {
	Code        string  `json:"code" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	AccountType string  `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	NormalSide  *string `json:"normalSide" binding:"omitempty,oneof=DEBIT CREDIT"` // Defaults from accountType when omitted
	Postable    *bool   `json:"postable"`                                         // Defaults to true when omitted
	Description string  `json:"description"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID   string `json:"accountID"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	AccountType string `json:"accountType"`
	NormalSide  string `json:"normalSide"`
	Postable    bool   `json:"postable"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"isActive"`
}

// ListAccountsResponse wraps a page of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   a.AccountID,
		Code:        a.Code,
		Name:        a.Name,
		AccountType: string(a.AccountType),
		NormalSide:  string(a.NormalSide),
		Postable:    a.Postable,
		Description: a.Description,
		IsActive:    a.IsActive,
	}
}

// ToListAccountsResponse converts a slice of domain.Account to a list response.
func ToListAccountsResponse(accounts []domain.Account, limit, offset int) ListAccountsResponse {
	resp := ListAccountsResponse{
		Accounts: make([]AccountResponse, len(accounts)),
		Limit:    limit,
		Offset:   offset,
	}
	for i := range accounts {
		resp.Accounts[i] = ToAccountResponse(&accounts[i])
	}
	return resp
}
