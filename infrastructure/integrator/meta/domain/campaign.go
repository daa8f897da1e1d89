package metadomain

type Campaign struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
}

type CampaignInsight struct {
	AccountID    string   `json:"account_id"`
	AccountName  string   `json:"account_name"`
	Actions      []Action `json:"actions"`
	ActionValues []Action `json:"action_values"`
	CampaignID   string   `json:"campaign_id"`
	CampaignName string   `json:"campaign_name"`
	Clicks       string   `json:"clicks"`
	DateStart    string   `json:"date_start"`
	DateStop     string   `json:"date_stop"`
	Impressions  string   `json:"impressions"`
	Spend        string   `json:"spend"`
}

// Conversions conta as compras atribuídas à campanha no período
func (c *CampaignInsight) Conversions() int {
	return int(SumActions(c.Actions, PurchaseActionTypes...))
}

// Revenue soma o valor das compras atribuídas à campanha no período
func (c *CampaignInsight) Revenue() float64 {
	return SumActions(c.ActionValues, PurchaseActionTypes...)
}
