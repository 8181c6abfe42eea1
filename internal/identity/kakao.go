package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/mindpairing/mindpairing-backend/internal/forum"
)

// KakaoProvider resolves tokens against Kakao's user-info endpoint.
type KakaoProvider struct {
	userInfoURL string
	client      *http.Client
	logger      *zap.SugaredLogger
}

func NewKakaoProvider(userInfoURL string, logger *zap.SugaredLogger) *KakaoProvider {
	return &KakaoProvider{
		userInfoURL: userInfoURL,
		client:      &http.Client{Timeout: 5 * time.Second},
		logger:      logger,
	}
}

var _ Provider = (*KakaoProvider)(nil)

type kakaoUserInfo struct {
	ID         int64 `json:"id"`
	Properties struct {
		Nickname     string `json:"nickname"`
		ProfileImage string `json:"profile_image"`
	} `json:"properties"`
}

func (p *KakaoProvider) Resolve(ctx context.Context, token string) (*Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build user-info request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("user-info request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrUnauthorized
	case resp.StatusCode != http.StatusOK:
		if p.logger != nil {
			p.logger.Errorw("Unexpected user-info status", "status", resp.StatusCode)
		}
		return nil, fmt.Errorf("user-info status %d", resp.StatusCode)
	}

	var info kakaoUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode user-info: %w", err)
	}
	if info.ID == 0 {
		return nil, ErrUnauthorized
	}

	id := &Identity{
		ExternalID: strconv.FormatInt(info.ID, 10),
		Profile:    forum.Profile{Nickname: info.Properties.Nickname},
	}
	if info.Properties.ProfileImage != "" {
		image := info.Properties.ProfileImage
		id.Profile.Image = &image
	}
	return id, nil
}
