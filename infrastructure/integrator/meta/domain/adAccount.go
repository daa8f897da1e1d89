package metadomain

type BusinessManager struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type AdAccount struct {
	BusinessManagerID   string `json:"business_id"`
	BusinessManagerName string `json:"business_name"`
	ID                  string `json:"id"`
	Name                string `json:"name"`
}

// Action é um par tipo/valor devolvido pela API do Meta tanto em "actions"
// (contagens) quanto em "action_values" (valores monetários)
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

type AdAccountInsight struct {
	AccountID    string   `json:"account_id"`
	Actions      []Action `json:"actions"`
	ActionValues []Action `json:"action_values"`
	Clicks       string   `json:"clicks"`
	DateStart    string   `json:"date_start"`
	DateStop     string   `json:"date_stop"`
	Impressions  string   `json:"impressions"`
	Name         string   `json:"account_name"`
	Spend        string   `json:"spend"`
}

// Conversions conta as compras atribuídas no período
func (i *AdAccountInsight) Conversions() int {
	return int(SumActions(i.Actions, PurchaseActionTypes...))
}

// Revenue soma o valor das compras atribuídas no período
func (i *AdAccountInsight) Revenue() float64 {
	return SumActions(i.ActionValues, PurchaseActionTypes...)
}
