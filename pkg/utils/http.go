package utils

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Response é o corpo e o tipo de conteúdo de uma requisição GET bem-sucedida
type Response struct {
	Body        []byte
	ContentType string
}

// MakeRequest faz um GET somente leitura e exige status 200
func MakeRequest(ctx context.Context, client *http.Client, url string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Error on Request: %s status: %s", url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{
		Body:        data,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}
