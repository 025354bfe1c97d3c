package storage

import (
	"context"
	"encoding/json"

	"github.com/ekaraman/skyfare/internal/common"
)

// TempLogin is the one-shot handoff blob written by registration and consumed
// once by the login flow, so a freshly registered user does not retype their
// credentials.
type TempLogin struct {
	Username           string `json:"username"`
	Password           string `json:"password"`
	ShowSuccessMessage bool   `json:"showSuccessMessage"`
}

// SetTempLogin writes the handoff blob. Best-effort, like every store write.
func SetTempLogin(ctx context.Context, s Store, username, password string) {
	data, err := json.Marshal(TempLogin{Username: username, Password: password, ShowSuccessMessage: true})
	if err != nil {
		return
	}
	s.Set(ctx, common.TempLoginKey, string(data))
}

// TakeTempLogin reads and deletes the handoff blob, returning whether one was
// present and well-formed.
func TakeTempLogin(ctx context.Context, s Store) (TempLogin, bool) {
	raw, ok := s.GetString(ctx, common.TempLoginKey)
	if !ok {
		return TempLogin{}, false
	}
	s.Delete(ctx, common.TempLoginKey)

	var t TempLogin
	if err := json.Unmarshal([]byte(raw), &t); err != nil {
		return TempLogin{}, false
	}
	return t, true
}
