package request

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/wayfarer-ai/wayfarer/utils/json"
)

// Request performs an HTTP call against a collaborator service and
// unmarshals the JSON response body into resp. Headers are passed as
// alternating key/value strings.
func Request(ctx context.Context, method, url string, param string, resp interface{}, headKvs ...string) error {
	req, err := http.NewRequestWithContext(ctx, method, url, strings.NewReader(param))
	if err != nil {
		return err
	}
	if len(headKvs)%2 != 0 {
		return errors.New("header be pair")
	}
	for i := 0; i+1 < len(headKvs); i += 2 {
		req.Header.Set(headKvs[i], headKvs[i+1])
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}
	if resp == nil {
		return nil
	}
	return json.Unmarshal(body, resp)
}
