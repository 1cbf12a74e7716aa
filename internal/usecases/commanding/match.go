package commanding

import (
	"strings"

	adsdomain "github.com/Tabo-ecom/Grandline-antigravity-sub003/infrastructure/integrator/ads/domain"
)

// matchCampaignName casa o nome livre citado pelo usuário com uma campanha
// real. A regra é deliberadamente simples e fica isolada aqui: primeiro
// igualdade exata sem caixa, depois a primeira campanha cujo nome contém o
// termo. Sem match, nil.
func matchCampaignName(campaigns []adsdomain.Campaign, query string) *adsdomain.Campaign {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return nil
	}

	for i := range campaigns {
		if strings.ToLower(campaigns[i].Name) == needle {
			return &campaigns[i]
		}
	}

	for i := range campaigns {
		if strings.Contains(strings.ToLower(campaigns[i].Name), needle) {
			return &campaigns[i]
		}
	}

	return nil
}
