package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters for the application lifecycle and issuance engine. Registered once
// at package init so usecases and tests can share them safely.
var (
	ApplicationsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vendorhub_applications_submitted_total",
		Help: "Total number of vendor applications submitted",
	})
	PaymentsConfirmed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vendorhub_payments_confirmed_total",
		Help: "Total number of application payments confirmed",
	})
	ApplicationsApproved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vendorhub_applications_approved_total",
		Help: "Total number of vendor applications approved",
	})
	ApplicationsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vendorhub_applications_rejected_total",
		Help: "Total number of vendor applications rejected",
	})
	CertificatesIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vendorhub_certificates_issued_total",
		Help: "Total number of certificates minted",
	})
	CertificatesRevoked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vendorhub_certificates_revoked_total",
		Help: "Total number of certificates revoked",
	})
)
