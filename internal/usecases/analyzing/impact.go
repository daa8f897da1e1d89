package analyzing

import (
	"fmt"

	"github.com/vfg2006/cognitive-insights-api/internal/domain"
	"github.com/vfg2006/cognitive-insights-api/pkg/utils"
)

// Quantificadores de impacto financeiro. Cada função devolve um FinancialImpact
// com a string de cálculo reproduzindo a aritmética com os números reais, já
// que toda recomendação precisa ser auditável. Invariante: líquido = bruto -
// custo e nunca negativo; quando a conta daria negativo, o quantificador
// devolve o impacto zerado.

// WastedSpendImpact quantifica gasto com retorno zero: o impacto bruto é o
// próprio gasto do período, sem custo de execução.
func WastedSpendImpact(spendBRL float64) domain.FinancialImpact {
	spend := utils.RoundWithTwoDecimalPlace(spendBRL)
	if spend < 0 {
		spend = 0
	}

	return domain.FinancialImpact{
		GrossImpactBRL: spend,
		CostBRL:        0,
		NetImpactBRL:   spend,
		Calculation: fmt.Sprintf(
			"Gasto com retorno zero: R$ %.2f investidos sem conversão, total do período",
			spend,
		),
	}
}

// UnderinvestmentImpact quantifica subinvestimento: o gasto incremental até o
// benchmark é valorado ao ROAS atual da entidade, uma estimativa conservadora
// que não assume que o ROAS marginal acompanha o médio. Zerado quando o
// benchmark não supera o gasto atual.
func UnderinvestmentImpact(currentSpend, benchmarkSpend, currentRoas float64) domain.FinancialImpact {
	additional := utils.RoundWithTwoDecimalPlace(benchmarkSpend - currentSpend)
	if additional <= 0 || currentRoas <= 0 {
		return domain.FinancialImpact{
			GrossImpactBRL: 0,
			CostBRL:        0,
			NetImpactBRL:   0,
			Calculation: fmt.Sprintf(
				"Sem subinvestimento: gasto atual R$ %.2f já alcança o benchmark R$ %.2f",
				currentSpend, benchmarkSpend,
			),
		}
	}

	gross := utils.RoundWithTwoDecimalPlace(additional * currentRoas)
	net := utils.RoundWithTwoDecimalPlace(gross - additional)
	if net < 0 {
		return domain.FinancialImpact{
			GrossImpactBRL: 0,
			CostBRL:        0,
			NetImpactBRL:   0,
			Calculation: fmt.Sprintf(
				"Sem oportunidade líquida: ROAS atual %.2f não cobre o custo incremental de R$ %.2f",
				currentRoas, additional,
			),
		}
	}

	return domain.FinancialImpact{
		GrossImpactBRL: gross,
		CostBRL:        additional,
		NetImpactBRL:   net,
		Calculation: fmt.Sprintf(
			"(R$ %.2f - R$ %.2f) x ROAS %.2f = R$ %.2f de receita incremental; custo adicional R$ %.2f; líquido R$ %.2f",
			benchmarkSpend, currentSpend, currentRoas, gross, additional, net,
		),
	}
}

// PerformanceGapImpact quantifica o déficit de receita de uma entidade que
// opera abaixo de um ROAS de referência: a receita que o gasto atual geraria
// no ROAS de referência contra a receita efetivamente gerada.
func PerformanceGapImpact(spendBRL, currentRoas, benchmarkRoas float64) domain.FinancialImpact {
	spend := utils.RoundWithTwoDecimalPlace(spendBRL)
	if spend <= 0 || benchmarkRoas <= currentRoas {
		return domain.FinancialImpact{
			GrossImpactBRL: 0,
			CostBRL:        0,
			NetImpactBRL:   0,
			Calculation: fmt.Sprintf(
				"Sem déficit: ROAS atual %.2f já alcança a referência %.2f",
				currentRoas, benchmarkRoas,
			),
		}
	}

	gross := utils.RoundWithTwoDecimalPlace(spend * benchmarkRoas)
	cost := utils.RoundWithTwoDecimalPlace(spend * currentRoas)
	net := utils.RoundWithTwoDecimalPlace(gross - cost)

	return domain.FinancialImpact{
		GrossImpactBRL: gross,
		CostBRL:        cost,
		NetImpactBRL:   net,
		Calculation: fmt.Sprintf(
			"R$ %.2f x ROAS de referência %.2f = R$ %.2f esperados; receita atual R$ %.2f; déficit R$ %.2f",
			spend, benchmarkRoas, gross, cost, net,
		),
	}
}

// ReallocationImpact quantifica a troca de verba entre duas entidades: a
// receita ganha no destino contra a receita perdida na origem. Só faz sentido
// (e só é exposto pelos analisadores) quando o ROAS do destino supera o da
// origem.
func ReallocationImpact(amountToMove, sourceRoas, destRoas float64) domain.FinancialImpact {
	amount := utils.RoundWithTwoDecimalPlace(amountToMove)
	if amount < 0 {
		amount = 0
	}

	gross := utils.RoundWithTwoDecimalPlace(amount * destRoas)
	cost := utils.RoundWithTwoDecimalPlace(amount * sourceRoas)
	net := utils.RoundWithTwoDecimalPlace(gross - cost)
	if net < 0 {
		return domain.FinancialImpact{
			GrossImpactBRL: 0,
			CostBRL:        0,
			NetImpactBRL:   0,
			Calculation: fmt.Sprintf(
				"Sem ganho líquido: ROAS de destino %.2f não supera o ROAS de origem %.2f",
				destRoas, sourceRoas,
			),
		}
	}

	return domain.FinancialImpact{
		GrossImpactBRL: gross,
		CostBRL:        cost,
		NetImpactBRL:   net,
		Calculation: fmt.Sprintf(
			"R$ %.2f x ROAS destino %.2f = R$ %.2f ganhos; R$ %.2f x ROAS origem %.2f = R$ %.2f cedidos; líquido R$ %.2f",
			amount, destRoas, gross, amount, sourceRoas, cost, net,
		),
	}
}
