// Command import bulk-loads property listings from a CSV export into the
// document store.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"proplist-backend/domain"
	"proplist-backend/infrastructure/config"
	"proplist-backend/infrastructure/persistence/mongodb"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func main() {
	filePath := flag.String("file", "data/properties.csv", "path to the properties CSV file")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	properties, err := readProperties(*filePath)
	if err != nil {
		logger.Fatal("Failed to read CSV", zap.String("file", *filePath), zap.Error(err))
	}
	logger.Info("parsed properties", zap.Int("count", len(properties)))

	client, err := mongodb.Connect(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to connect to document store", zap.Error(err))
	}
	defer client.Disconnect(ctx)

	repo := mongodb.NewPropertyRepository(client.Database(cfg.MongoDatabase), logger)
	if err := repo.InsertMany(ctx, properties); err != nil {
		logger.Fatal("Failed to import properties", zap.Error(err))
	}

	logger.Info("properties imported", zap.Int("count", len(properties)))
}

// readProperties parses the CSV file into listings. The header row names the
// columns; unknown columns are ignored.
func readProperties(path string) ([]domain.Property, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, err
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	properties := make([]domain.Property, 0, len(records))
	for _, record := range records {
		field := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		property := domain.Property{
			ID:          field("id"),
			Title:       field("title"),
			Type:        field("type"),
			Price:       parseFloat(field("price")),
			State:       field("state"),
			City:        field("city"),
			AreaSqFt:    parseFloat(field("areaSqFt")),
			Bedrooms:    parseInt(field("bedrooms")),
			Bathrooms:   parseInt(field("bathrooms")),
			Amenities:   splitList(field("amenities")),
			Furnished:   field("furnished"),
			ListedBy:    field("listedBy"),
			Tags:        field("tags"),
			ColorTheme:  field("colorTheme"),
			Rating:      parseFloat(field("rating")),
			IsVerified:  field("isVerified") == "true",
			ListingType: field("listingType"),
		}
		if raw := field("availableFrom"); raw != "" {
			if t, err := time.Parse(time.RFC3339, raw); err == nil {
				property.AvailableFrom = t
			} else if t, err := time.Parse("2006-01-02", raw); err == nil {
				property.AvailableFrom = t
			}
		}
		if raw := field("_id"); raw != "" {
			if oid, err := primitive.ObjectIDFromHex(raw); err == nil {
				property.ObjectID = oid
			}
		}
		properties = append(properties, property)
	}
	return properties, nil
}

func parseInt(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

// splitList parses a pipe-separated cell into its entries.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
