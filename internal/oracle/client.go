// internal/oracle/client.go
// 外部の習熟度推定サービス (ベイズ知識追跡ベースの推定器) のHTTPクライアントです。
// エンジンはこのサービスをオラクルとして扱い、ベイズ更新の中身には関知しない。
// 1回の呼び出しで1試行分の結果だけを送ること。
package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go_5_adapt_quiz/internal/model"

	"github.com/google/uuid"
)

// Client は習熟度オラクルへの問い合わせ窓口です
type Client interface {
	// Update は1試行の正誤をオラクルへ送信します。updated=true 以外は失敗扱い。
	Update(ctx context.Context, learnerID uuid.UUID, topicSlug string, correct bool) error
	// Get は現在の習熟度確率 [0,1] を取得します
	Get(ctx context.Context, learnerID uuid.UUID, topicSlug string) (float64, error)
}

type httpClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPClient は実サービス向けのクライアントを生成します。
// timeout を超えた呼び出しは失敗として扱う (無限待ちはしない)。
func NewHTTPClient(baseURL, apiKey string, timeout time.Duration) Client {
	return &httpClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

type updateResponse struct {
	Updated bool `json:"Updated"`
}

type masteryResponse struct {
	Mastery float64 `json:"Mastery"`
}

func (c *httpClient) Update(ctx context.Context, learnerID uuid.UUID, topicSlug string, correct bool) error {
	outcome := "0"
	if correct {
		outcome = "1"
	}
	reqURL := fmt.Sprintf("%s/update-state/%s/%s/%s",
		c.baseURL, learnerID, url.PathEscape(topicSlug), outcome)

	var payload updateResponse
	if err := c.do(ctx, http.MethodPatch, reqURL, &payload); err != nil {
		return err
	}
	if !payload.Updated {
		// レスポンスは返ったが更新されていない。古い習熟度のまま進めてはいけない。
		return model.NewAppError("ORACLE_UPDATE_FAILED",
			"習熟度推定サービスが更新を受理しませんでした。", "", model.ErrOracleUnavailable)
	}
	return nil
}

func (c *httpClient) Get(ctx context.Context, learnerID uuid.UUID, topicSlug string) (float64, error) {
	reqURL := fmt.Sprintf("%s/get-mastery/%s/%s",
		c.baseURL, learnerID, url.PathEscape(topicSlug))

	var payload masteryResponse
	if err := c.do(ctx, http.MethodGet, reqURL, &payload); err != nil {
		return 0, err
	}
	// Mastery == 0 は未学習トピックの正当な値。エラーにはしない。
	return payload.Mastery, nil
}

func (c *httpClient) do(ctx context.Context, method, reqURL string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, reqURL, nil)
	if err != nil {
		return model.NewAppError("ORACLE_REQUEST_FAILED", "習熟度推定サービスへのリクエスト生成に失敗しました。", "", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("access_token", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		// タイムアウト・接続失敗はすべて一時障害として分類する (呼び出し側がリトライを判断)
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return model.NewAppError("ORACLE_TIMEOUT", "習熟度推定サービスが時間内に応答しませんでした。", "", model.ErrOracleUnavailable)
		}
		return model.NewAppError("ORACLE_UNAVAILABLE", "習熟度推定サービスに接続できません。", "", model.ErrOracleUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return model.NewAppError("ORACLE_UNAVAILABLE",
			fmt.Sprintf("習熟度推定サービスがステータス %d を返しました。", resp.StatusCode), "", model.ErrOracleUnavailable)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return model.NewAppError("ORACLE_UNAVAILABLE", "習熟度推定サービスの応答を解釈できません。", "", model.ErrOracleUnavailable)
	}
	return nil
}
