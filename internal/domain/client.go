package domain

import "time"

// Client owns accounts and is the entry point that triggers a transaction
// against one of them. Identity fields are fixed at registration; only the
// account list grows afterwards.
type Client struct {
	TaxID              string
	Name               string
	DOB                time.Time
	Address            string
	TransactionPinHash string
	CreatedAt          time.Time

	accounts []Account
}

func NewClient(taxID, name string, dob time.Time, address string) *Client {
	return &Client{
		TaxID:     taxID,
		Name:      name,
		DOB:       dob,
		Address:   address,
		CreatedAt: time.Now(),
	}
}

func (c *Client) RegisterAccount(acc Account) {
	c.accounts = append(c.accounts, acc)
}

func (c *Client) Accounts() []Account {
	out := make([]Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}

// PrimaryAccount returns the client's first registered account. Operations
// act on a single account per client.
func (c *Client) PrimaryAccount() (Account, error) {
	if len(c.accounts) == 0 {
		return nil, ErrNoAccount
	}
	return c.accounts[0], nil
}

// Execute forwards the transaction to the given account. Ownership of the
// account is the caller's responsibility; Execute does not re-validate it.
func (c *Client) Execute(acc Account, tr Transaction) error {
	return tr.Apply(acc)
}
