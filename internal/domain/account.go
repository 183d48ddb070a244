package domain

type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "ACTIVE"
	AccountStatusInactive AccountStatus = "INACTIVE"
)

// Account é uma conta de anúncios registrada para avaliação.
// ExternalID é o identificador na plataforma de origem: act_<id> no Meta,
// customer id numérico no Google Ads.
type Account struct {
	ID         string        `json:"id"`
	ExternalID string        `json:"external_id"`
	Name       string        `json:"name"`
	Nickname   *string       `json:"nickname"`
	Platform   Platform      `json:"platform"`
	Status     AccountStatus `json:"status"`
}

type AccountResponse struct {
	ID         string        `json:"id"`
	ExternalID string        `json:"external_id"`
	Name       string        `json:"name"`
	Nickname   *string       `json:"nickname"`
	Platform   Platform      `json:"platform"`
	Status     AccountStatus `json:"status"`
}

type UpdateAccountRequest struct {
	ID       string  `json:"id"`
	Nickname *string `json:"nickname,omitempty"`
	Status   *string `json:"status,omitempty"`
}

type SyncAccountsResponse struct {
	Quantity int    `json:"quantity"`
	Message  string `json:"message"`
	Error    bool   `json:"error"`
}

type SyncReportsResponse struct {
	Quantity int    `json:"quantity"`
	Message  string `json:"message"`
	Error    bool   `json:"error"`
}
