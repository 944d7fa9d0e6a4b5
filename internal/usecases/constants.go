package usecases

import (
	"strings"

	"github.com/Inventrix-AI/vendor-Hub-sub001/internal/domain/entities"
	"github.com/Inventrix-AI/vendor-Hub-sub001/pkg/crypto"
)

const (
	applicationIDPrefix = "APP"
	vendorIDPrefix      = "VND"
	certNumberPrefix    = "VH-"

	// certNumberMaxAttempts bounds the collision retry loop for certificate
	// number generation.
	certNumberMaxAttempts = 5

	// DefaultApplicationFee is the onboarding fee in paise.
	DefaultApplicationFee int64 = 50000
)

// designatedCities maps a designated-city match to its certificate type.
// Lookup is a case-insensitive substring match on the application's city.
var designatedCities = map[string]entities.CertificateType{
	"bhopal":   entities.CertificateTypeBhopal,
	"indore":   entities.CertificateTypeIndore,
	"jabalpur": entities.CertificateTypeJabalpur,
	"gwalior":  entities.CertificateTypeGwalior,
	"ujjain":   entities.CertificateTypeUjjain,
}

// DetermineCertificateTypes is the single source of truth for which
// certificates an application receives. Generation and regeneration both call
// it, so the two can never disagree.
func DetermineCertificateTypes(gender entities.Gender, city string) []entities.CertificateType {
	if gender == entities.GenderFemale {
		return []entities.CertificateType{entities.CertificateTypeMP, entities.CertificateTypeMahilaEkta}
	}
	lowered := strings.ToLower(city)
	for name, certType := range designatedCities {
		if strings.Contains(lowered, name) {
			return []entities.CertificateType{entities.CertificateTypeMP, certType}
		}
	}
	return []entities.CertificateType{entities.CertificateTypeMP}
}

func generateApplicationID() (string, error) {
	suffix, err := crypto.GenerateRandomToken(5)
	if err != nil {
		return "", err
	}
	return applicationIDPrefix + strings.ToUpper(suffix), nil
}

func generateVendorID() (string, error) {
	suffix, err := crypto.GenerateRandomToken(5)
	if err != nil {
		return "", err
	}
	return vendorIDPrefix + strings.ToUpper(suffix), nil
}

func generateCertificateNumber() (string, error) {
	suffix, err := crypto.GenerateRandomToken(6)
	if err != nil {
		return "", err
	}
	return certNumberPrefix + strings.ToUpper(suffix), nil
}
