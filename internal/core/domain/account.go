package domain

// NormalBalanceSide indicates on which side an account normally carries its balance.
type NormalBalanceSide string

const (
	DebitSide  NormalBalanceSide = "DEBIT"
	CreditSide NormalBalanceSide = "CREDIT"
)

// AccountGroup is the classification of an account in the chart of accounts.
type AccountGroup string

const (
	Asset     AccountGroup = "ASSET"
	Liability AccountGroup = "LIABILITY"
	Equity    AccountGroup = "EQUITY"
	Revenue   AccountGroup = "REVENUE"
	Expense   AccountGroup = "EXPENSE"
)

// Account is a ledger account in the chart of accounts, identified by a unique
// account number (e.g. "101"). The number is immutable once created.
type Account struct {
	AccountNumber     string            `json:"accountNumber"`
	Name              string            `json:"name"`
	AccountGroup      AccountGroup      `json:"accountGroup"`
	NormalBalanceSide NormalBalanceSide `json:"normalBalanceSide"`
	AuditFields
}
