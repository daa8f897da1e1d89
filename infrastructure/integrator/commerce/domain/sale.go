package commercedomain

import "time"

// Sale é um pedido faturado retornado pela API do e-commerce
type Sale struct {
	ID          int        `json:"id,omitempty"`
	Date        string     `json:"data,omitempty"`
	Status      string     `json:"status,omitempty"`
	Number      int        `json:"numero,omitempty"`
	GrossAmount float64    `json:"valor_bruto,omitempty"`
	Discount    float64    `json:"desconto,omitempty"`
	NetAmount   float64    `json:"valor_liquido,omitempty"`
	Items       []SaleItem `json:"itens,omitempty"`
}

// SaleItem é um item de pedido com custo e preço líquido por unidade
type SaleItem struct {
	ID            int     `json:"id,omitempty"`
	Product       Product `json:"produto,omitempty"`
	Quantity      float64 `json:"quantidade,omitempty"`
	Cost          float64 `json:"custo,omitempty"`
	NetUnitPrice  float64 `json:"valor_unitario_liquido,omitempty"`
	NetTotalPrice float64 `json:"valor_total_liquido,omitempty"`
}

// Product identifica o SKU vendido
type Product struct {
	ID          int    `json:"id,omitempty"`
	Reference   string `json:"referencia,omitempty"`
	Description string `json:"descricao,omitempty"`
	Group       string `json:"grupo,omitempty"`
	Brand       string `json:"grife,omitempty"`
}

// StockRecord é a posição de estoque de um SKU
type StockRecord struct {
	Reference string `json:"referencia,omitempty"`
	Units     int    `json:"unidades,omitempty"`
}

// GetSKUParams identifica o lojista na API multi-cliente
type GetSKUParams struct {
	CNPJ       string
	SecretName string
}

// CheckConnectionParams valida as credenciais de um lojista
type CheckConnectionParams struct {
	CNPJ      string
	Token     string
	StartDate time.Time
	EndDate   time.Time
}
