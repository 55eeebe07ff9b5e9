// Package jsonstore persiste cada conjunto de registros en un archivo JSON
// plano (products.json, orders.json, users.json) con semántica de lectura y
// reemplazo completos.
//
// Modelo de concurrencia documentado: cada archivo tiene su mutex, pero el
// ciclo leer-modificar-guardar de los casos de uso son dos llamadas separadas;
// dos peticiones simultáneas sobre el mismo registro pueden pisarse (gana el
// último escritor).
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// readJSON lee y decodifica un archivo completo. Un archivo inexistente se
// trata como conjunto vacío.
func readJSON[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer %s: %w", filepath.Base(path), err)
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decodificar %s: %w", filepath.Base(path), err)
	}
	return items, nil
}

// writeJSON codifica y sobreescribe el archivo completo (indentado, para poder
// inspeccionarlo a mano).
func writeJSON[T any](path string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("codificar %s: %w", filepath.Base(path), err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("crear directorio de datos: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", filepath.Base(path), err)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
