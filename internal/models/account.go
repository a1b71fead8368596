package models

import "time"

// Account mirrors a row of the accounts table.
type Account struct {
	AccountNumber     string    `json:"accountNumber"`
	Name              string    `json:"name"`
	AccountGroup      string    `json:"accountGroup"`
	NormalBalanceSide string    `json:"normalBalanceSide"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
