package background

import (
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/atuservicios/servicio-api/api/mocks"
	"github.com/atuservicios/servicio-api/schema"
	"github.com/atuservicios/servicio-api/utils"
)

var loadBundleOnce sync.Once

func loadTestBundle() {
	loadBundleOnce.Do(func() {
		viper.Set("i18n.dir", "../i18n")
		utils.InitI18NBundle()
	})
}

type notified struct {
	accountNumber string
	headings      map[string]string
	contents      map[string]string
	data          map[string]interface{}
}

type fakeNotifier struct {
	sent []notified
}

func (f *fakeNotifier) NotifyAccountByText(accountNumber string, headings, contents map[string]string, data map[string]interface{}) error {
	f.sent = append(f.sent, notified{
		accountNumber: accountNumber,
		headings:      headings,
		contents:      contents,
		data:          data,
	})
	return nil
}

func TestNotifySearchingAgain(t *testing.T) {
	loadTestBundle()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockServicioCore(ctl)
	notifier := &fakeNotifier{}
	m := &BackgroundManager{
		store:    a,
		notifier: notifier,
	}

	a.EXPECT().GetRequest("req-1").Return(&schema.ServiceRequest{
		ClientID:    "client-1",
		ServiceType: schema.ServicePlumber,
		Status:      schema.REQUEST_PENDING,
	}, nil).Times(1)

	err := m.NotifySearchingAgain("req-1")
	assert.NoError(t, err, "wrong error")

	if assert.Len(t, notifier.sent, 1, "wrong notification count") {
		n := notifier.sent[0]
		assert.Equal(t, "client-1", n.accountNumber, "wrong receiver")
		assert.Equal(t, "Searching again", n.headings["en"], "wrong heading")
		assert.Equal(t, "Buscando de nuevo", n.headings["es"], "wrong heading")
		assert.Equal(t, "Looking for available service providers", n.contents["en"], "wrong content")
		assert.Equal(t, "SEARCHING_AGAIN", n.data["notification_type"], "wrong notification type")
		assert.Equal(t, "req-1", n.data["request_id"], "wrong request id")
	}
}

func TestNotifySearchingAgainSkipsAcceptedRequest(t *testing.T) {
	loadTestBundle()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockServicioCore(ctl)
	notifier := &fakeNotifier{}
	m := &BackgroundManager{
		store:    a,
		notifier: notifier,
	}

	// the retry lost the race against an acceptance
	a.EXPECT().GetRequest("req-1").Return(&schema.ServiceRequest{
		ClientID:   "client-1",
		ProviderID: "provider-1",
		Status:     schema.REQUEST_ACCEPTED,
	}, nil).Times(1)

	err := m.NotifySearchingAgain("req-1")
	assert.NoError(t, err, "wrong error")
	assert.Empty(t, notifier.sent, "no notification expected")
}
