package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/bottic/shop-backend/config"
	"github.com/bottic/shop-backend/internal/app/model"
	"github.com/bottic/shop-backend/internal/db"
)

// Imports a product catalog from an XLSX file. Expected columns:
// sku | title | description | price | stock | categories
// where categories is a comma separated list of category names.
// Category names that do not exist yet are created on the fly.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	products, err := readProductsFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total products to import: %d\n", len(products))

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	imported, skipped, err := importProducts(products)
	if err != nil {
		log.Fatal("Import failed:", err)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("  Imported: %d\n", imported)
	fmt.Printf("  Skipped (duplicate sku): %d\n", skipped)
}

type productRow struct {
	sku         string
	title       string
	description string
	price       decimal.Decimal
	stock       int
	categories  []string
}

func readProductsFromXLSX(filePath string) ([]productRow, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	fmt.Printf("Reading sheet: %s\n", sheetName)

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in XLSX file")
	}

	var products []productRow
	seenSKUs := make(map[string]bool)
	skippedCount := 0

	for i, row := range rows {
		if i == 0 {
			fmt.Printf("Headers: %v\n", row)
			continue
		}

		if len(row) < 4 {
			skippedCount++
			continue
		}

		sku := strings.TrimSpace(row[0])
		title := strings.TrimSpace(row[1])
		description := strings.TrimSpace(row[2])
		priceStr := strings.TrimSpace(row[3])

		if sku == "" || title == "" || priceStr == "" {
			skippedCount++
			continue
		}

		if seenSKUs[sku] {
			skippedCount++
			continue
		}
		seenSKUs[sku] = true

		price, err := decimal.NewFromString(priceStr)
		if err != nil || price.IsNegative() {
			skippedCount++
			continue
		}

		stock := 0
		if len(row) > 4 {
			if parsed, err := strconv.Atoi(strings.TrimSpace(row[4])); err == nil && parsed >= 0 {
				stock = parsed
			}
		}

		var categories []string
		if len(row) > 5 {
			for _, name := range strings.Split(row[5], ",") {
				if trimmed := strings.TrimSpace(name); trimmed != "" {
					categories = append(categories, trimmed)
				}
			}
		}

		products = append(products, productRow{
			sku:         sku,
			title:       title,
			description: description,
			price:       price,
			stock:       stock,
			categories:  categories,
		})

		if len(products)%1000 == 0 {
			fmt.Printf("Processed %d products...\n", len(products))
		}
	}

	fmt.Printf("\nSummary:\n")
	fmt.Printf("  Total rows: %d\n", len(rows)-1)
	fmt.Printf("  Valid products: %d\n", len(products))
	fmt.Printf("  Skipped rows: %d\n", skippedCount)

	return products, nil
}

func importProducts(products []productRow) (imported, skipped int, err error) {
	gdb := db.GetDB()
	categoryCache := make(map[string]*model.Category)

	for _, row := range products {
		var existing model.Product
		result := gdb.Where("sku = ?", row.sku).First(&existing)
		if result.Error == nil {
			skipped++
			continue
		}

		var categories []model.Category
		for _, name := range row.categories {
			category, ok := categoryCache[name]
			if !ok {
				category = &model.Category{Name: name}
				if err := gdb.Where("name = ?", name).FirstOrCreate(category).Error; err != nil {
					return imported, skipped, fmt.Errorf("failed to resolve category %q: %w", name, err)
				}
				categoryCache[name] = category
			}
			categories = append(categories, *category)
		}

		product := model.Product{
			Title:         row.title,
			Description:   row.description,
			Price:         row.price,
			StockQuantity: row.stock,
			SKU:           row.sku,
			Categories:    categories,
		}

		if err := gdb.Create(&product).Error; err != nil {
			return imported, skipped, fmt.Errorf("failed to create product %q: %w", row.sku, err)
		}
		imported++
	}

	return imported, skipped, nil
}
