package adsclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/pkg/errors"

	adsdomain "github.com/Tabo-ecom/Grandline-antigravity-sub003/infrastructure/integrator/ads/domain"
)

// GetAccountMetadata busca nome e moeda da conta. A resposta é cacheada por
// conta+consulta com TTL curto: o dado muda raramente e a consulta roda a
// cada despacho.
func (c *AdsClient) GetAccountMetadata(ctx context.Context, accountID, accessToken string) (*adsdomain.AccountMetadata, error) {
	cacheKey := "act_" + accountID + ":metadata"
	if cached, ok := c.metadataCache.Get(cacheKey); ok {
		return cached.(*adsdomain.AccountMetadata), nil
	}

	params := url.Values{}
	params.Add("fields", "id,name,currency")
	params.Add("access_token", accessToken)

	body, err := c.doGet(ctx, fmt.Sprintf("%s/act_%s?%s", c.cfg.Ads.URL, accountID, params.Encode()))
	if err != nil {
		return nil, err
	}

	metadata := &adsdomain.AccountMetadata{}
	if err := json.Unmarshal(body, metadata); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar metadados da conta")
	}

	c.metadataCache.Set(cacheKey, metadata)

	return metadata, nil
}
