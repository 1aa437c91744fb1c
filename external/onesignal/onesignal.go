package onesignal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const logPrefix = "onesignal"

var apiEndpoint = "https://onesignal.com/api/v1"

// NotificationRequest is the payload of a notification delivery
type NotificationRequest struct {
	AppID          string                 `json:"app_id"`
	TemplateID     string                 `json:"template_id,omitempty"`
	Headings       map[string]string      `json:"headings,omitempty"`
	Contents       map[string]string      `json:"contents,omitempty"`
	Filters        []map[string]string    `json:"filters,omitempty"`
	Data           map[string]interface{} `json:"data,omitempty"`
	LocalChannelID string                 `json:"android_channel_id,omitempty"`
}

// OneSignalClient is a client of the onesignal notification service
type OneSignalClient struct {
	client *http.Client
	apiKey string
}

func NewClient(client *http.Client) *OneSignalClient {
	return &OneSignalClient{
		client: client,
		apiKey: viper.GetString("onesignal.apikey"),
	}
}

// SendNotification submits one notification delivery request. The caller
// treats failures as best effort.
func (o *OneSignalClient) SendNotification(ctx context.Context, notification *NotificationRequest) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", apiEndpoint+"/notifications", bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+o.apiKey)

	resp, err := o.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.WithField("prefix", logPrefix).Errorf("notification request rejected with status: %d", resp.StatusCode)
		return fmt.Errorf("notification request failed with status: %d", resp.StatusCode)
	}

	return nil
}
