package background

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/atuservicios/servicio-api/schema"
	"github.com/atuservicios/servicio-api/utils"
)

var notificationLanguages = []string{"en", "es"}

// localizedText renders a message id into the language map onesignal expects
func localizedText(messageID string, data map[string]interface{}) map[string]string {
	texts := map[string]string{}
	for _, lang := range notificationLanguages {
		text, err := utils.NewLocalizer(lang).Localize(&i18n.LocalizeConfig{
			MessageID:    messageID,
			TemplateData: data,
		})
		if err != nil {
			log.WithField("prefix", "background").WithError(err).Warnf("localize %s", messageID)
			continue
		}
		texts[lang] = text
	}
	return texts
}

func serviceTitle(serviceType schema.ServiceType) string {
	for _, s := range schema.Services {
		if s.Type == serviceType {
			return s.Title
		}
	}
	return "Service"
}

// BroadcastNewRequest is a background job to notify available providers of
// the right service type around a freshly created request. Notification
// failures are logged and skipped; the job never fails the request itself.
func (m *BackgroundManager) BroadcastNewRequest(requestID string) error {
	req, err := m.store.GetRequest(requestID)
	if err != nil {
		return err
	}

	if req.Status != schema.REQUEST_PENDING {
		// accepted or abandoned while the job sat in the queue
		return nil
	}

	distance := viper.GetInt("matching.broadcast_distance")
	if distance == 0 {
		distance = 10000
	}

	providers, err := m.mongo.NearbyProviders(req.ServiceType, distance, req.Location)
	if err != nil {
		return err
	}

	data := map[string]interface{}{
		"notification_type": "NEW_REQUEST",
		"request_id":        requestID,
	}
	templateData := map[string]interface{}{
		"ServiceTitle": serviceTitle(req.ServiceType),
	}

	headings := localizedText("notification.new_request.title", nil)
	contents := localizedText("notification.new_request.body", templateData)

	for _, p := range providers {
		if err := m.notifier.NotifyAccountByText(p.AccountNumber, headings, contents, data); err != nil {
			log.WithField("prefix", "background").WithError(err).
				Warnf("notify provider %s", p.AccountNumber)
		}
	}

	return nil
}

// NotifySearchingAgain is a background job to tell the client that its
// request was re-announced to providers after an exhausted countdown. Only
// a still-open request notifies; a retry racing an acceptance is dropped.
func (m *BackgroundManager) NotifySearchingAgain(requestID string) error {
	req, err := m.store.GetRequest(requestID)
	if err != nil {
		return err
	}

	if req.Status != schema.REQUEST_PENDING {
		return nil
	}

	return m.notifier.NotifyAccountByText(req.ClientID,
		localizedText("notification.searching_again.title", nil),
		localizedText("notification.searching_again.body", nil),
		map[string]interface{}{
			"notification_type": "SEARCHING_AGAIN",
			"request_id":        requestID,
		},
	)
}

// NotifyRequestAccepted is a background job to tell the waiting client that
// a provider took its request
func (m *BackgroundManager) NotifyRequestAccepted(requestID string) error {
	req, err := m.store.GetRequest(requestID)
	if err != nil {
		return err
	}

	if req.ProviderID == "" {
		return nil
	}

	providerName := "A provider"
	if provider, err := m.store.GetAccount(req.ProviderID); err == nil {
		providerName = provider.Name
	}

	return m.notifier.NotifyAccountByText(req.ClientID,
		localizedText("notification.request_accepted.title", nil),
		localizedText("notification.request_accepted.body", map[string]interface{}{
			"ProviderName": providerName,
		}),
		map[string]interface{}{
			"notification_type": "REQUEST_ACCEPTED",
			"request_id":        requestID,
		},
	)
}
