package metadomain

type AdAccount struct {
	BusinessManagerID   string `json:"business_id"`
	BusinessManagerName string `json:"business_name"`
	ID                  string `json:"id"`
	Name                string `json:"name"`
	AccountStatus       int    `json:"account_status"`
}
