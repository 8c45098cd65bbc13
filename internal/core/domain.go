package core

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	Income  MovementKind = "income"
	Expense MovementKind = "expense"
)

const (
	AccountDebit      AccountType = "debit"
	AccountCredit     AccountType = "credit"
	AccountSavings    AccountType = "savings"
	AccountInvestment AccountType = "investment"
)

// Stored date layouts. Both sort lexicographically, which the store relies
// on for range filters and ordering.
const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04"
)

type (
	MovementKind string

	AccountType string

	// Transaction is a single income or expense entry.
	Transaction struct {
		ID          int64
		Kind        MovementKind
		Category    string
		Amount      decimal.Decimal
		Description string
		Timestamp   time.Time
	}

	// Subscription is a fixed monthly obligation billed on a given day.
	Subscription struct {
		ID            int64
		Name          string
		MonthlyAmount decimal.Decimal
		BillingDay    int // 1-31
		Active        bool
	}

	// Loan tracks an amount borrowed and the payments made against it.
	// Active flips to false when AmountPaid reaches Principal, or when the
	// loan is removed by the user; the schema does not distinguish the two.
	Loan struct {
		ID                 int64
		Lender             string
		Principal          decimal.Decimal
		AmountPaid         decimal.Decimal
		MonthlyInstallment decimal.Decimal
		DueDay             int // 1-31
		StartDate          time.Time
		Active             bool
	}

	// CreditPurchase is an installment purchase paid off one month at a
	// time. MonthlyInstallment is derived once at create/edit time by the
	// amortization calculator and stored, never recomputed on read.
	CreditPurchase struct {
		ID                 int64
		Description        string
		Lender             string
		Principal          decimal.Decimal
		TermMonths         int
		MonthlyInstallment decimal.Decimal
		MonthsPaid         int
		PurchaseDate       time.Time
		MonthlyRate        decimal.Decimal // percent per month; 0 = interest-free
		Paid               bool
	}

	// SavingsGoal accumulates deposits toward a target amount.
	SavingsGoal struct {
		ID            int64
		Name          string
		TargetAmount  decimal.Decimal
		CurrentAmount decimal.Decimal
		StartDate     time.Time
		Completed     bool
	}

	// BankAccount holds a balance. Credit-type accounts may go negative
	// and carry a credit limit.
	BankAccount struct {
		ID          int64
		BankName    string
		AccountType AccountType
		Balance     decimal.Decimal
		CreditLimit decimal.Decimal
		CreatedDate time.Time
		Active      bool
	}

	// Transfer is an append-only record of a balance move between two
	// accounts. Account references may dangle once an account is removed.
	Transfer struct {
		ID            int64
		SourceID      int64
		DestinationID int64
		Amount        decimal.Decimal
		Timestamp     time.Time
		Description   string
	}

	// Budget is a per-category spending limit. One row per category:
	// saving replaces any prior limit, so there is no per-month history.
	// Month and Year record when the limit was last saved.
	Budget struct {
		ID       int64
		Category string
		Limit    decimal.Decimal
		Month    int
		Year     int
	}

	// Setting is a generic key/value row for cross-cutting app state
	// (PIN hash, theme, onboarding flag).
	Setting struct {
		Key   string
		Value string
	}
)

var (
	ErrInvalidKind        = errors.New("invalid movement kind")
	ErrInvalidAccountType = errors.New("invalid account type")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidDay         = errors.New("day of month must be between 1 and 31")
	ErrInvalidTerm        = errors.New("term must be at least one month")
	ErrNegativeRate       = errors.New("interest rate cannot be negative")
	ErrEmptyCategory      = errors.New("empty category")
	ErrEmptyName          = errors.New("empty name")
	ErrEmptyLender        = errors.New("empty lender")
	ErrEmptyDescription   = errors.New("empty description")
	ErrNotFound           = errors.New("not found")
	ErrCreditAlreadyPaid  = errors.New("credit purchase already paid")
	ErrSameAccount        = errors.New("source and destination accounts must differ")
)

func (k MovementKind) Validate() error {
	switch k {
	case Income, Expense:
		return nil
	}
	return ErrInvalidKind
}

func (t AccountType) Validate() error {
	switch t {
	case AccountDebit, AccountCredit, AccountSavings, AccountInvestment:
		return nil
	}
	return ErrInvalidAccountType
}

func validDay(day int) bool {
	return day >= 1 && day <= 31
}

func (t Transaction) Validate() error {
	if err := t.Kind.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if !t.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

func (s Subscription) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyName
	}
	if !s.MonthlyAmount.IsPositive() {
		return ErrInvalidAmount
	}
	if !validDay(s.BillingDay) {
		return ErrInvalidDay
	}
	return nil
}

func (l Loan) Validate() error {
	if strings.TrimSpace(l.Lender) == "" {
		return ErrEmptyLender
	}
	if !l.Principal.IsPositive() {
		return ErrInvalidAmount
	}
	if !l.MonthlyInstallment.IsPositive() {
		return ErrInvalidAmount
	}
	if !validDay(l.DueDay) {
		return ErrInvalidDay
	}
	return nil
}

func (c CreditPurchase) Validate() error {
	if strings.TrimSpace(c.Description) == "" {
		return ErrEmptyDescription
	}
	if strings.TrimSpace(c.Lender) == "" {
		return ErrEmptyLender
	}
	if !c.Principal.IsPositive() {
		return ErrInvalidAmount
	}
	if c.TermMonths < 1 {
		return ErrInvalidTerm
	}
	if c.MonthlyRate.IsNegative() {
		return ErrNegativeRate
	}
	return nil
}

func (g SavingsGoal) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return ErrEmptyName
	}
	if !g.TargetAmount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

func (a BankAccount) Validate() error {
	if strings.TrimSpace(a.BankName) == "" {
		return ErrEmptyName
	}
	if err := a.AccountType.Validate(); err != nil {
		return err
	}
	if a.CreditLimit.IsNegative() {
		return ErrInvalidAmount
	}
	return nil
}
