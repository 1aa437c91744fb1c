package background

import (
	"context"

	"github.com/atuservicios/servicio-api/external/onesignal"
)

type NotificationCenter interface {
	NotifyAccountByText(accountNumber string, headings, contents map[string]string, data map[string]interface{}) error
}

type OnesignalNotificationCenter struct {
	appID  string
	client *onesignal.OneSignalClient
}

func NewOnesignalNotificationCenter(appID string, client *onesignal.OneSignalClient) *OnesignalNotificationCenter {
	return &OnesignalNotificationCenter{
		appID:  appID,
		client: client,
	}
}

// NotifyAccountByText sends a message to an account by raw headings,
// contents and data
func (o *OnesignalNotificationCenter) NotifyAccountByText(accountNumber string, headings, contents map[string]string, data map[string]interface{}) error {
	filters := []map[string]string{
		{
			"field":    "tag",
			"key":      "account_number",
			"relation": "=",
			"value":    accountNumber,
		},
	}

	req := &onesignal.NotificationRequest{
		AppID:          o.appID,
		Headings:       headings,
		Contents:       contents,
		Filters:        filters,
		Data:           data,
		LocalChannelID: "important_alert",
	}
	return o.client.SendNotification(context.Background(), req)
}
