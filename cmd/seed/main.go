// seed genera un script SQL para poblar el catálogo de productos a partir
// del CSV exportado por el sistema de escritorio anterior. El export viene
// en Latin-1 (ISO-8859-1), con acentos en nombres y presentaciones.
//
// Formato esperado: sku,nombre,presentacion,precio,envase_retornable,deposito_envase
//
// Uso: go run ./cmd/seed [ruta/catalogo.csv]
// Por defecto busca catalogo.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_productos.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

func main() {
	csvPath := "catalogo.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// El sistema anterior exporta en ISO-8859-1
	reader := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	reader.FieldsPerRecord = 6
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	if len(records) > 0 && strings.EqualFold(records[0][0], "sku") {
		records = records[1:] // saltar cabecera
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_productos.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Catálogo de productos\n")
	out.WriteString("-- Generado desde el export CSV del sistema anterior\n\n")

	n := 0
	for _, rec := range records {
		sku := strings.TrimSpace(rec[0])
		nombre := strings.TrimSpace(rec[1])
		if sku == "" || nombre == "" {
			continue
		}
		retornable := "false"
		if strings.EqualFold(strings.TrimSpace(rec[4]), "si") || rec[4] == "1" || strings.EqualFold(rec[4], "true") {
			retornable = "true"
		}
		fmt.Fprintf(out, "INSERT INTO productos (id, sku, nombre, presentacion, precio, envase_retornable, deposito_envase)\n")
		fmt.Fprintf(out, "VALUES (gen_random_uuid(), '%s', '%s', '%s', %s, %s, %s)\n",
			escapeSQL(sku), escapeSQL(nombre), escapeSQL(strings.TrimSpace(rec[2])),
			numOrZero(rec[3]), retornable, numOrZero(rec[5]))
		out.WriteString("ON CONFLICT (sku) DO UPDATE SET nombre = EXCLUDED.nombre, precio = EXCLUDED.precio;\n")
		n++
	}

	fmt.Printf("Generado %s: %d productos\n", outPath, n)
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// numOrZero valida que el campo parezca numérico; si no, emite 0.
func numOrZero(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "0"
	}
	for _, c := range s {
		if (c < '0' || c > '9') && c != '.' && c != '-' {
			return "0"
		}
	}
	return s
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
