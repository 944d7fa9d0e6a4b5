package usecases

import (
	"context"

	"go.uber.org/zap"

	"github.com/Inventrix-AI/vendor-Hub-sub001/pkg/logger"
)

// NotificationChannel selects the delivery channel for a notification
type NotificationChannel string

const (
	NotificationChannelEmail NotificationChannel = "email"
	NotificationChannelSMS   NotificationChannel = "sms"
)

// Notifier is the outbound notification collaborator. Delivery failures are
// logged and audited but never fail the state transition that triggered them.
type Notifier interface {
	Send(ctx context.Context, channel NotificationChannel, recipient, templateID string, data map[string]interface{}) (string, error)
}

// Renderer is the certificate rendering collaborator. The core only cares
// whether rendering succeeded, never about the bytes themselves.
type Renderer interface {
	RenderCertificate(ctx context.Context, data *CertificateRenderData) ([]byte, error)
}

// CertificateRenderData is everything the renderer needs to draw one certificate
type CertificateRenderData struct {
	CertificateNumber string `json:"certificateNumber"`
	CertificateType   string `json:"certificateType"`
	HolderName        string `json:"holderName"`
	BusinessName      string `json:"businessName"`
	Address           string `json:"address"`
	City              string `json:"city"`
	State             string `json:"state"`
	IssuedAt          string `json:"issuedAt"`
	ValidUntil        string `json:"validUntil"`
}

// PlainTextRenderer is the default Renderer; it produces a plain-text
// rendition so downloads work without the real rendering service.
type PlainTextRenderer struct{}

// NewPlainTextRenderer creates a plain text renderer
func NewPlainTextRenderer() *PlainTextRenderer {
	return &PlainTextRenderer{}
}

// RenderCertificate renders the certificate data as plain text
func (r *PlainTextRenderer) RenderCertificate(ctx context.Context, data *CertificateRenderData) ([]byte, error) {
	out := "Certificate " + data.CertificateNumber + " (" + data.CertificateType + ")\n" +
		data.HolderName + ", " + data.BusinessName + "\n" +
		data.City + ", " + data.State + "\n" +
		"Valid " + data.IssuedAt + " to " + data.ValidUntil + "\n"
	return []byte(out), nil
}

// LogNotifier is the default Notifier; it records the send without delivering
// anything. Real transports live outside the core.
type LogNotifier struct{}

// NewLogNotifier creates a log-only notifier
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Send logs the notification and returns a synthetic id
func (n *LogNotifier) Send(ctx context.Context, channel NotificationChannel, recipient, templateID string, data map[string]interface{}) (string, error) {
	logger.Info(ctx, "notification dispatched",
		zap.String("channel", string(channel)),
		zap.String("recipient", recipient),
		zap.String("template", templateID),
	)
	return "log-" + templateID, nil
}
