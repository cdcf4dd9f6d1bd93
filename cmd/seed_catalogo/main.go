// seed_catalogo genera el script SQL de datos semilla (roles, categorías y
// productos demo) a partir del export legado Catalogo.xml.
//
// Uso: go run ./cmd/seed_catalogo [ruta/Catalogo.xml]
// Por defecto busca Catalogo.xml en el directorio actual.
// Escribe: db/seed.sql
package main

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type catalogo struct {
	Categorias []categoria `xml:"categoria"`
}

type categoria struct {
	Nombre    string     `xml:"nombre,attr"`
	Productos []producto `xml:"producto"`
}

type producto struct {
	Nombre string `xml:"nombre,attr"`
	Precio string `xml:"precio,attr"`
	Stock  string `xml:"stock,attr"`
}

func main() {
	xmlPath := "Catalogo.xml"
	if len(os.Args) > 1 {
		xmlPath = os.Args[1]
	}
	f, err := os.Open(xmlPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir XML: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	var cat catalogo
	dec := xml.NewDecoder(f)
	// El export legado viene en ISO-8859-1 (tildes y eñes del catálogo)
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		if strings.EqualFold(charset, "ISO-8859-1") || strings.EqualFold(charset, "ISO8859-1") {
			return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
		}
		return input, nil
	}
	if err := dec.Decode(&cat); err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar XML: %v\n", err)
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "db", "seed.sql")
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Crear directorio: %v\n", err)
		os.Exit(1)
	}
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Datos semilla: roles, categorías y productos demo\n")
	out.WriteString("-- Generado desde Catalogo.xml\n\n")

	// 1. Roles del conjunto cerrado
	out.WriteString("-- 1. Roles\n")
	out.WriteString("INSERT INTO roles (id, name) VALUES\n")
	out.WriteString("  (1, 'Admin'),\n")
	out.WriteString("  (2, 'User')\n")
	out.WriteString("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name;\n\n")

	// 2. Categorías y productos con subquery a la categoría
	nCats, nProds := 0, 0
	out.WriteString("-- 2. Categorías y productos\n")
	for _, c := range cat.Categorias {
		if c.Nombre == "" {
			continue
		}
		name := escapeSQL(strings.TrimSpace(c.Nombre))
		fmt.Fprintf(out, "INSERT INTO categories (name) VALUES ('%s')\n", name)
		out.WriteString("ON CONFLICT (name) DO NOTHING;\n")
		nCats++
		for _, p := range c.Productos {
			if p.Nombre == "" || p.Precio == "" {
				continue
			}
			stock := p.Stock
			if stock == "" {
				stock = "0"
			}
			fmt.Fprintf(out, "INSERT INTO products (name, price, stock, category_id)\n")
			fmt.Fprintf(out, "SELECT '%s', %s, %s, id FROM categories WHERE name = '%s';\n",
				escapeSQL(strings.TrimSpace(p.Nombre)), p.Precio, stock, name)
			nProds++
		}
	}

	fmt.Printf("Generado %s: %d categorías, %d productos\n", outPath, nCats, nProds)
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
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
