//go:build ignore

package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"smartexpire/internal/catalog"
)

// generateCatalog writes the built-in catalog as editable YAML and as the
// gzip variant accepted by CATALOG_FILE and the S3 loader.
func main() {
	dataDir := "data/catalog"

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	c := catalog.Builtin()

	for _, filename := range []string{"catalog.yaml", "catalog.yaml.gz"} {
		filePath := filepath.Join(dataDir, filename)

		if err := writeCatalogFile(filePath, c); err != nil {
			log.Fatalf("Failed to create %s: %v", filename, err)
		}

		fmt.Printf("Created %s\n", filePath)
	}

	recipes := 0
	for _, list := range c.Recipes {
		recipes += len(list)
	}

	fmt.Println("\nCatalog files created successfully!")
	fmt.Printf("  - %d ingredient lists, %d recipes\n", len(c.Recipes), recipes)
	fmt.Printf("  - %d disposal categories plus the default entry\n", len(c.Disposal))
	fmt.Println("\nLoad one with CATALOG_FILE=data/catalog/catalog.yaml.gz")
}

func writeCatalogFile(filePath string, c *catalog.Catalog) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if err := catalog.Encode(file, c, catalog.IsGzip(filePath)); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}

	return nil
}
