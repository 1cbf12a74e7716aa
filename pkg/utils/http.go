package utils

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// PostJSON envia um corpo JSON já serializado e devolve o corpo da resposta.
// Status fora da faixa 2xx vira erro com o corpo truncado para diagnóstico.
func PostJSON(ctx context.Context, client *http.Client, url string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("requisição para %s retornou status %s: %s", url, resp.Status, truncate(string(data), 200))
	}

	return data, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
