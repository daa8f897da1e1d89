package cognition

import (
	"fmt"
	"strings"

	"github.com/vfg2006/cognitive-insights-api/internal/domain"
)

// SummarizeForPrompt formata uma CognitiveResponse como texto plano para
// inclusão em prompts de LLM. É uma camada de formatação sobre o resultado da
// análise, não parte do contrato do motor.
func SummarizeForPrompt(response *domain.CognitiveResponse) string {
	if response == nil {
		return ""
	}

	var builder strings.Builder

	fmt.Fprintf(&builder, "Análise da conta %s\n", response.AccountID)
	fmt.Fprintf(&builder, "Modo de operação: %s (health score %d/100)\n", response.Mode.Mode, response.HealthScore)
	fmt.Fprintf(&builder, "%s\n\n", response.Mode.Description)

	fmt.Fprintf(&builder, "Gargalo dominante: %s (%s)\n", constraintLabel(response.Bottleneck.Constraint), response.Bottleneck.Severity)
	fmt.Fprintf(&builder, "Ação de desbloqueio: %s\n", response.Bottleneck.UnlockAction)
	if response.Bottleneck.FinancialImpact != nil {
		fmt.Fprintf(&builder, "Impacto estimado: R$ %.2f (%s)\n", response.Bottleneck.FinancialImpact.NetImpactBRL, response.Bottleneck.FinancialImpact.Calculation)
	}

	if len(response.Findings) > 0 {
		fmt.Fprintf(&builder, "\nAchados (%d):\n", len(response.Findings))
		for _, finding := range response.Findings {
			fmt.Fprintf(&builder, "- [%s/%s] %s", finding.Severity, finding.Category, finding.Title)
			if finding.FinancialImpact != nil {
				fmt.Fprintf(&builder, " (impacto líquido R$ %.2f)", finding.FinancialImpact.NetImpactBRL)
			}
			builder.WriteString("\n")
		}
	}

	if len(response.PacingProjections) > 0 {
		builder.WriteString("\nPacing do mês:\n")
		for _, projection := range response.PacingProjections {
			fmt.Fprintf(&builder, "- %s: %.2f realizado, projeção %.2f contra meta %.2f (%s)\n",
				projection.Label, projection.CurrentValue, projection.ProjectedEndOfMonth, projection.Target, projection.Scenario)
		}
	}

	if len(response.TopRecommendations) > 0 {
		builder.WriteString("\nPróximas ações recomendadas:\n")
		for i, rec := range response.TopRecommendations {
			fmt.Fprintf(&builder, "%d. %s (impacto %s, esforço %s)\n", i+1, rec.Action, rec.Impact, rec.Effort)
		}
	}

	return builder.String()
}
