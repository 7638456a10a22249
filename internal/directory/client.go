package directory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/RUTHVIKRAO04/HackConnect/internal/models"
)

// Client pushes new signups to the legacy user-directory service. The
// endpoint predates this API and may be down; callers must treat failures as
// non-fatal so registration flows are never blocked on it.
type Client struct {
	url        string
	httpClient *http.Client
}

func NewClient(url string) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

type syncPayload struct {
	FullName    string `json:"fullName"`
	FirebaseUid string `json:"firebaseUid"`
	Role        string `json:"role"`
}

// SyncUser upserts the user's directory record in the legacy store.
func (c *Client) SyncUser(user models.User) error {
	if c == nil || c.url == "" {
		return fmt.Errorf("directory sync not configured")
	}

	body, err := json.Marshal(syncPayload{
		FullName:    user.FullName,
		FirebaseUid: user.Uid,
		Role:        user.Role,
	})
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Post(c.url, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("directory sync returned status %d", resp.StatusCode)
	}

	return nil
}
