// Package wompi implementa las firmas de integridad de la pasarela de pagos
// Wompi (Colombia). Algoritmo: SHA-256 sobre la cadena de concatenación en el
// orden estricto definido por la pasarela, sin separadores.
//
// La concatenación sin delimitadores es frágil ante inyección entre campos
// ("ab"+"1" colisiona con "a"+"b1"); es una característica conocida del
// esquema de la pasarela y debe reproducirse byte a byte, no corregirse.
package wompi

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
)

// GenerateSignature calcula la firma de integridad de una transacción saliente.
// Cadena (orden estricto Wompi): reference + amountInCents + currency + integritySecret.
// Salida: digest SHA-256 en hexadecimal minúscula. Función pura y determinista.
func GenerateSignature(reference string, amountInCents int64, currency, integritySecret string) (string, error) {
	if integritySecret == "" {
		return "", fmt.Errorf("wompi: WOMPI_INTEGRITY_SECRET no configurado")
	}
	cadena := reference + strconv.FormatInt(amountInCents, 10) + currency + integritySecret
	hash := sha256.Sum256([]byte(cadena))
	return hex.EncodeToString(hash[:]), nil
}

// VerifyWebhookSignature verifica el checksum de un evento entrante de Wompi.
// Cadena (orden estricto Wompi): transactionID + status + amountInCents + timestamp + eventsSecret.
// Devuelve true solo si el digest coincide exactamente con checksum (comparación
// hex case-sensitive). Un checksum que no coincide devuelve false, nunca error;
// el único error posible es la falta del secret (problema de configuración).
func VerifyWebhookSignature(checksum, transactionID, status string, amountInCents, timestamp int64, eventsSecret string) (bool, error) {
	if eventsSecret == "" {
		return false, fmt.Errorf("wompi: WOMPI_EVENTS_SECRET no configurado")
	}
	cadena := transactionID + status + strconv.FormatInt(amountInCents, 10) +
		strconv.FormatInt(timestamp, 10) + eventsSecret
	hash := sha256.Sum256([]byte(cadena))
	return hex.EncodeToString(hash[:]) == checksum, nil
}
