package adsclient

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"

	adsdomain "github.com/Tabo-ecom/Grandline-antigravity-sub003/infrastructure/integrator/ads/domain"
)

// SetBudget grava o orçamento diário da entidade. A API espera o valor em
// centavos da moeda da conta. Reutiliza a política de retentativa do
// cliente; qualquer falha vira string no resultado, nunca atravessa a borda
// como erro solto.
func (c *AdsClient) SetBudget(ctx context.Context, level adsdomain.EntityLevel, entityID, accessToken string, dailyBudget float64) adsdomain.MutationResult {
	form := url.Values{}
	form.Add("daily_budget", strconv.FormatInt(int64(math.Round(dailyBudget*100)), 10))
	form.Add("access_token", accessToken)

	return c.mutate(ctx, level, entityID, form)
}

// SetStatus ativa ou pausa a entidade.
func (c *AdsClient) SetStatus(ctx context.Context, level adsdomain.EntityLevel, entityID, accessToken, status string) adsdomain.MutationResult {
	if status != adsdomain.StatusActive && status != adsdomain.StatusPaused {
		return adsdomain.MutationResult{
			Success: false,
			Error:   fmt.Sprintf("status inválido: %s", status),
		}
	}

	form := url.Values{}
	form.Add("status", status)
	form.Add("access_token", accessToken)

	return c.mutate(ctx, level, entityID, form)
}

func (c *AdsClient) mutate(ctx context.Context, level adsdomain.EntityLevel, entityID string, form url.Values) adsdomain.MutationResult {
	rawURL := fmt.Sprintf("%s/%s", c.cfg.Ads.URL, entityID)

	_, err := c.doPost(ctx, rawURL, form)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"entity_id": entityID,
			"level":     string(level),
			"error":     err.Error(),
		}).Error("ads: falha na mutação de entidade")

		return adsdomain.MutationResult{
			Success: false,
			Error:   err.Error(),
		}
	}

	logrus.WithFields(logrus.Fields{
		"entity_id": entityID,
		"level":     string(level),
	}).Info("ads: mutação aplicada com sucesso")

	return adsdomain.MutationResult{Success: true}
}
