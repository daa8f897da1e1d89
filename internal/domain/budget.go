package domain

// BudgetEntry representa a alocação atual de verba de uma entidade
type BudgetEntry struct {
	Entity        string  `json:"entity"`
	EntityName    string  `json:"entity_name"`
	CurrentBudget float64 `json:"current_budget"`
	CurrentRoas   float64 `json:"current_roas"`
}

// BudgetAllocation é a realocação recomendada para uma entidade
type BudgetAllocation struct {
	Entity            string  `json:"entity"`
	EntityName        string  `json:"entity_name"`
	CurrentBudget     float64 `json:"current_budget"`
	RecommendedBudget float64 `json:"recommended_budget"`
	Delta             float64 `json:"delta"`
	Rationale         string  `json:"rationale"`
}

// BudgetPlan é o plano de realocação de verba proposto pelo otimizador.
// Invariante: a soma dos orçamentos recomendados é igual ao orçamento total
// (realocação, nunca criação de verba) e ExpectedTotalRoas >= CurrentTotalRoas.
type BudgetPlan struct {
	TotalBudget       float64            `json:"total_budget"`
	CurrentTotalRoas  float64            `json:"current_total_roas"`
	ExpectedTotalRoas float64            `json:"expected_total_roas"`
	Confidence        float64            `json:"confidence"`
	Allocations       []BudgetAllocation `json:"allocations"`
}
