package adsclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/pkg/errors"

	adsdomain "github.com/Tabo-ecom/Grandline-antigravity-sub003/infrastructure/integrator/ads/domain"
)

type responseCampaigns struct {
	Data   []adsdomain.Campaign `json:"data"`
	Paging adsdomain.Paging     `json:"paging"`
}

// ListCampaigns lista as campanhas ativas da conta, paginando até o teto.
func (c *AdsClient) ListCampaigns(ctx context.Context, accountID, accessToken string) ([]adsdomain.Campaign, error) {
	baseURL := fmt.Sprintf("%s/act_%s/campaigns", c.cfg.Ads.URL, accountID)

	params := url.Values{}
	params.Add("fields", "id,name,status,daily_budget")
	params.Add("effective_status", "['ACTIVE']")
	params.Add("access_token", accessToken)

	campaigns := make([]adsdomain.Campaign, 0)
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

		var response responseCampaigns
		if err := json.Unmarshal(body, &response); err != nil {
			return nil, errors.Wrap(err, "erro ao decodificar campanhas")
		}

		campaigns = append(campaigns, response.Data...)

		after = response.Paging.Cursors.After
		if after == "" || len(response.Data) == 0 {
			break
		}
	}

	return campaigns, nil
}
