package adsclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	adsdomain "github.com/Tabo-ecom/Grandline-antigravity-sub003/infrastructure/integrator/ads/domain"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/config"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/domain"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/pkg/cache"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/pkg/metrics"
)

// Client é a interface da plataforma de anúncios: leitura de insights e
// metadados e mutação de orçamento/status. O token é por tenant e viaja em
// cada chamada.
type Client interface {
	GetCampaignInsights(ctx context.Context, accountID, accessToken string, filters *domain.InsightFilters) ([]adsdomain.InsightRow, error)
	GetAccountMetadata(ctx context.Context, accountID, accessToken string) (*adsdomain.AccountMetadata, error)
	ListCampaigns(ctx context.Context, accountID, accessToken string) ([]adsdomain.Campaign, error)

	SetBudget(ctx context.Context, level adsdomain.EntityLevel, entityID, accessToken string, dailyBudget float64) adsdomain.MutationResult
	SetStatus(ctx context.Context, level adsdomain.EntityLevel, entityID, accessToken, status string) adsdomain.MutationResult
}

type AdsClient struct {
	cfg        *config.Config
	httpClient *http.Client
	// metadataCache guarda respostas de metadados de conta por
	// conta+consulta. Insights nunca passam por aqui: são dados vivos.
	metadataCache *cache.TTLCache
	// sleep é injetável para testar o backoff sem dormir de verdade.
	sleep func(time.Duration)
}

func NewClient(cfg *config.Config) *AdsClient {
	return &AdsClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Ads.TimeoutSeconds) * time.Second,
		},
		metadataCache: cache.New(time.Duration(cfg.Ads.MetadataCacheTTLMinutes) * time.Minute),
		sleep:         time.Sleep,
	}
}

// doGet executa um GET com classificação de erro e retentativas limitadas.
// Rate limit (códigos 4, 17, 32, 613 e respostas 5xx) recebe backoff
// exponencial até o teto de retentativas; token expirado falha na hora com
// erro tipado, porque retentar não ajuda.
func (c *AdsClient) doGet(ctx context.Context, rawURL string) ([]byte, error) {
	return c.execute(ctx, http.MethodGet, rawURL, nil)
}

// doPost executa um POST com corpo form-encoded e a mesma política de erro.
func (c *AdsClient) doPost(ctx context.Context, rawURL string, form url.Values) ([]byte, error) {
	return c.execute(ctx, http.MethodPost, rawURL, form)
}

func formReader(form url.Values) io.Reader {
	return strings.NewReader(form.Encode())
}

func (c *AdsClient) execute(ctx context.Context, method, rawURL string, form url.Values) ([]byte, error) {
	backoff := time.Duration(c.cfg.Ads.BackoffBaseMillis) * time.Millisecond
	const maxBackoff = 8 * time.Second

	var lastErr error
	for attempt := 0; attempt <= c.cfg.Ads.MaxRetries; attempt++ {
		if attempt > 0 {
			metrics.AdsAPIRetries.Inc()
			logrus.WithFields(logrus.Fields{
				"attempt": attempt,
				"backoff": backoff.String(),
			}).Warn("ads: rate limit, aguardando antes de retentar")

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
			c.sleep(backoff)

			backoff *= 2
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
		}

		body, retryable, err := c.attempt(ctx, method, rawURL, form)
		if err == nil {
			return body, nil
		}
		if !retryable {
			return nil, err
		}

		lastErr = err
	}

	return nil, errors.Wrap(lastErr, "ads: retentativas esgotadas")
}

// attempt faz uma única chamada e classifica a falha: (corpo, retentável, erro).
func (c *AdsClient) attempt(ctx context.Context, method, rawURL string, form url.Values) ([]byte, bool, error) {
	var req *http.Request
	var err error

	if form != nil {
		req, err = http.NewRequestWithContext(ctx, method, rawURL, formReader(form))
		if err == nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	} else {
		req, err = http.NewRequestWithContext(ctx, method, rawURL, nil)
	}
	if err != nil {
		return nil, false, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Falha de rede é tratada como transitória.
		return nil, true, errors.Wrap(err, "erro ao fazer a requisição")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, errors.Wrap(err, "erro ao ler resposta")
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, false, nil
	}

	retryable, err := c.classify(resp.StatusCode, body)
	return nil, retryable, err
}

// classify converte a resposta de erro da API nas duas classes de
// comportamento do cliente.
func (c *AdsClient) classify(status int, body []byte) (bool, error) {
	var errResp adsdomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Code != 0 {
		if errResp.IsTokenExpired() {
			return false, adsdomain.NewTokenExpiredError(&errResp)
		}
		if errResp.IsTransient() {
			return true, errors.Errorf("rate limit da plataforma (code=%d): %s", errResp.Error.Code, errResp.Error.Message)
		}
		return false, errors.Errorf("erro da plataforma de anúncios (code=%d): %s", errResp.Error.Code, errResp.Error.Message)
	}

	if status >= 500 {
		return true, errors.Errorf("erro %d da plataforma de anúncios", status)
	}

	return false, errors.Errorf("resposta inesperada da plataforma (status=%d): %s", status, body)
}
