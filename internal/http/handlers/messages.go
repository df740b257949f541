package handlers

import (
	"fmt"

	"gateway/internal/domain"
)

// catalog holds the response message templates per supported locale.
type catalog struct {
	unauthorized  string
	roleRequired  string
	featureDenied string
	limitReached  string
}

var catalogs = map[string]catalog{
	"en": {
		unauthorized:  "authentication required",
		roleRequired:  "requires role %s",
		featureDenied: "feature %s unavailable for current plan",
		limitReached:  "you have reached the limit for %s",
	},
	"es": {
		unauthorized:  "se requiere autenticación",
		roleRequired:  "requiere el rol %s",
		featureDenied: "la función %s no está disponible en tu plan actual",
		limitReached:  "has alcanzado el límite de %s",
	},
	"id": {
		unauthorized:  "autentikasi diperlukan",
		roleRequired:  "membutuhkan peran %s",
		featureDenied: "fitur %s tidak tersedia pada paket saat ini",
		limitReached:  "anda telah mencapai batas untuk %s",
	},
}

func catalogFor(locale string) catalog {
	if c, ok := catalogs[locale]; ok {
		return c
	}
	return catalogs["en"]
}

func messageUnauthorized(locale string) string {
	return catalogFor(locale).unauthorized
}

func messageRoleRequired(locale string, role domain.Role) string {
	return fmt.Sprintf(catalogFor(locale).roleRequired, role)
}

func messageFeatureDenied(locale, featureKey string) string {
	return fmt.Sprintf(catalogFor(locale).featureDenied, featureKey)
}

func messageLimitReached(locale, limitKey string) string {
	return fmt.Sprintf(catalogFor(locale).limitReached, limitKey)
}
