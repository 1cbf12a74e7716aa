package adsclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	adsdomain "github.com/Tabo-ecom/Grandline-antigravity-sub003/infrastructure/integrator/ads/domain"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/domain"
)

type responseInsights struct {
	Data   []adsdomain.InsightRow `json:"data"`
	Paging adsdomain.Paging       `json:"paging"`
}

// GetCampaignInsights busca linhas de performance por campanha no período,
// seguindo o cursor de paginação até esgotar ou bater no teto de páginas.
// O teto limita latência e custo contra contas gigantes ou cursores
// mal-comportados.
func (c *AdsClient) GetCampaignInsights(ctx context.Context, accountID, accessToken string, filters *domain.InsightFilters) ([]adsdomain.InsightRow, error) {
	baseURL := fmt.Sprintf("%s/act_%s/insights", c.cfg.Ads.URL, accountID)

	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}",
		filters.StartDate.Format(time.DateOnly),
		filters.EndDate.Format(time.DateOnly),
	)

	params := url.Values{}
	params.Add("level", "campaign")
	params.Add("fields", "campaign_id,campaign_name,spend,impressions,clicks,actions,action_values")
	params.Add("time_range", timeRange)
	params.Add("access_token", accessToken)

	rows := make([]adsdomain.InsightRow, 0)
	after := ""

	for page := 0; page < c.cfg.Ads.MaxPages; page++ {
		pageParams := cloneValues(params)
		if after != "" {
			pageParams.Set("after", after)
		}

		body, err := c.doGet(ctx, baseURL+"?"+pageParams.Encode())
		if err != nil {
			return nil, err
		}

		var response responseInsights
		if err := json.Unmarshal(body, &response); err != nil {
			return nil, errors.Wrap(err, "erro ao decodificar insights")
		}

		rows = append(rows, response.Data...)

		after = strings.TrimSpace(response.Paging.Cursors.After)
		if after == "" || len(response.Data) == 0 {
			return rows, nil
		}
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"max_pages":  c.cfg.Ads.MaxPages,
		"rows":       len(rows),
	}).Warn("ads: teto de páginas atingido, resultado truncado")

	return rows, nil
}

func cloneValues(src url.Values) url.Values {
	dst := url.Values{}
	for k, vs := range src {
		for _, v := range vs {
			dst.Add(k, v)
		}
	}
	return dst
}
