// Package budgeting propõe realocação de verba entre entidades sob hipótese
// de retornos decrescentes: o ROAS marginal de quem recebe verba decai por um
// fator fixo de elasticidade, declarado na confiança do plano em vez de
// escondido no cálculo.
package budgeting

import (
	"fmt"
	"sort"

	"github.com/vfg2006/cognitive-insights-api/internal/config"
	"github.com/vfg2006/cognitive-insights-api/internal/domain"
	"github.com/vfg2006/cognitive-insights-api/pkg/utils"
)

type Optimizer struct {
	policy config.BudgetPolicy
}

func New(policy config.BudgetPolicy) *Optimizer {
	return &Optimizer{policy: policy}
}

// Optimize redistribui o orçamento atual entre as entidades. A soma dos
// orçamentos recomendados é sempre igual à soma dos atuais, e o ROAS projetado
// nunca fica abaixo do atual: quando nenhuma troca melhora a projeção, o plano
// devolve a alocação idêntica.
func (o *Optimizer) Optimize(entries []domain.BudgetEntry) *domain.BudgetPlan {
	totalBudget := 0.0
	currentRevenue := 0.0
	for _, entry := range entries {
		totalBudget += entry.CurrentBudget
		currentRevenue += entry.CurrentBudget * entry.CurrentRoas
	}

	currentTotalRoas := utils.RoundWithTwoDecimalPlace(utils.SafeDivide(currentRevenue, totalBudget))

	plan := &domain.BudgetPlan{
		TotalBudget:       utils.RoundWithTwoDecimalPlace(totalBudget),
		CurrentTotalRoas:  currentTotalRoas,
		ExpectedTotalRoas: currentTotalRoas,
		Confidence:        o.policy.Confidence,
		Allocations:       make([]domain.BudgetAllocation, 0, len(entries)),
	}

	// Entrada degenerada (uma entidade, orçamento zero ou ROAS uniforme)
	// devolve a alocação idêntica em vez de errar
	if len(entries) < 2 || totalBudget == 0 {
		for _, entry := range entries {
			plan.Allocations = append(plan.Allocations, identityAllocation(entry))
		}
		return plan
	}

	deltas := make(map[string]float64, len(entries))
	received := make(map[string]float64, len(entries))
	projectedRevenue := currentRevenue

	donors, receivers := o.splitByAverage(entries, currentTotalRoas)

	for _, donor := range donors {
		moveable := donor.CurrentBudget * o.policy.MaxShiftPct

		for _, receiver := range receivers {
			if moveable <= 0 {
				break
			}

			// ROAS marginal do destino já descontada a elasticidade; a troca
			// só acontece se ainda assim superar o ROAS da origem
			marginalRoas := receiver.CurrentRoas * (1 - o.policy.ElasticityDecay)
			if marginalRoas <= donor.CurrentRoas {
				continue
			}

			capacity := receiver.CurrentBudget*o.policy.MaxShiftPct - received[receiver.Entity]
			if capacity <= 0 {
				continue
			}

			amount := utils.RoundWithTwoDecimalPlace(min(moveable, capacity))
			if amount <= 0 {
				continue
			}

			deltas[donor.Entity] -= amount
			deltas[receiver.Entity] += amount
			received[receiver.Entity] += amount
			moveable -= amount

			projectedRevenue += amount * (marginalRoas - donor.CurrentRoas)
		}
	}

	for _, entry := range entries {
		delta := utils.RoundWithTwoDecimalPlace(deltas[entry.Entity])
		if delta == 0 {
			plan.Allocations = append(plan.Allocations, identityAllocation(entry))
			continue
		}

		allocation := domain.BudgetAllocation{
			Entity:            entry.Entity,
			EntityName:        entry.EntityName,
			CurrentBudget:     utils.RoundWithTwoDecimalPlace(entry.CurrentBudget),
			RecommendedBudget: utils.RoundWithTwoDecimalPlace(entry.CurrentBudget + delta),
			Delta:             delta,
		}

		if delta > 0 {
			allocation.Rationale = fmt.Sprintf(
				"ROAS %.2f acima da média da conta (%.2f): recebe R$ %.2f adicionais",
				entry.CurrentRoas, currentTotalRoas, delta,
			)
		} else {
			allocation.Rationale = fmt.Sprintf(
				"ROAS %.2f abaixo da média da conta (%.2f): cede R$ %.2f para entidades mais eficientes",
				entry.CurrentRoas, currentTotalRoas, -delta,
			)
		}

		plan.Allocations = append(plan.Allocations, allocation)
	}

	plan.ExpectedTotalRoas = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(projectedRevenue, totalBudget))
	if plan.ExpectedTotalRoas < plan.CurrentTotalRoas {
		plan.ExpectedTotalRoas = plan.CurrentTotalRoas
	}

	return plan
}

// splitByAverage separa doadores (ROAS abaixo da média, piores primeiro) de
// receptores (ROAS acima da média, melhores primeiro). Empates são resolvidos
// pela chave da entidade para manter o plano determinístico.
func (o *Optimizer) splitByAverage(entries []domain.BudgetEntry, averageRoas float64) ([]domain.BudgetEntry, []domain.BudgetEntry) {
	donors := make([]domain.BudgetEntry, 0)
	receivers := make([]domain.BudgetEntry, 0)

	for _, entry := range entries {
		if entry.CurrentRoas < averageRoas {
			donors = append(donors, entry)
		} else if entry.CurrentRoas > averageRoas {
			receivers = append(receivers, entry)
		}
	}

	sort.SliceStable(donors, func(i, j int) bool {
		if donors[i].CurrentRoas != donors[j].CurrentRoas {
			return donors[i].CurrentRoas < donors[j].CurrentRoas
		}
		return donors[i].Entity < donors[j].Entity
	})

	sort.SliceStable(receivers, func(i, j int) bool {
		if receivers[i].CurrentRoas != receivers[j].CurrentRoas {
			return receivers[i].CurrentRoas > receivers[j].CurrentRoas
		}
		return receivers[i].Entity < receivers[j].Entity
	})

	return donors, receivers
}

func identityAllocation(entry domain.BudgetEntry) domain.BudgetAllocation {
	return domain.BudgetAllocation{
		Entity:            entry.Entity,
		EntityName:        entry.EntityName,
		CurrentBudget:     utils.RoundWithTwoDecimalPlace(entry.CurrentBudget),
		RecommendedBudget: utils.RoundWithTwoDecimalPlace(entry.CurrentBudget),
		Delta:             0,
		Rationale:         "Alocação mantida: nenhuma troca melhora o ROAS projetado",
	}
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
