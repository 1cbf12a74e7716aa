package notifier

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	"github.com/Tabo-ecom/Grandline-antigravity-sub003/pkg/utils"
)

// slackChannel entrega via webhook de entrada: um POST com payload JSON.
type slackChannel struct {
	httpClient *http.Client
	webhookURL string
}

func (s *slackChannel) Name() string {
	return "slack"
}

func (s *slackChannel) Send(ctx context.Context, text string) error {
	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return errors.Wrap(err, "slack: erro ao serializar payload")
	}

	if _, err := utils.PostJSON(ctx, s.httpClient, s.webhookURL, payload); err != nil {
		return errors.Wrap(err, "slack: erro no envio do webhook")
	}

	return nil
}
