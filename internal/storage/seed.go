package storage

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/bilabonnement/rental-service/internal/models"
)

// SeedRow is one contract-shaped row from the external import source. The
// source knows nothing about cars or customers, so those ids are absent.
type SeedRow struct {
	StartDate    models.Date
	EndDate      models.Date
	StartKm      int64
	ContractedKm int64
	MonthlyPrice float64
}

// RowSource yields seed rows one at a time; io.EOF ends the stream.
type RowSource interface {
	Next() (*SeedRow, error)
}

// InsertFunc is the single-record insert the seed loop feeds. It is the same
// create operation the HTTP surface uses, injected to keep persistence in the
// repository layer.
type InsertFunc func(ctx context.Context, in models.CreateContractInput) (*models.RentalContract, error)

// SeedIfEmpty bulk-loads the store from src, but only when rental_contracts
// holds no rows. Each row is inserted individually.
//
// The source carries no car or customer identity, so rows get sequential
// placeholder car_id/customer_id values starting at 1. This is a provisional
// policy pending a real car/customer registry: the ids are unique per seed
// run and nothing more.
func (s *Store) SeedIfEmpty(ctx context.Context, src RowSource, insert InsertFunc) error {
	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM rental_contracts"); err != nil {
		return &SchemaError{Err: err}
	}
	if count > 0 {
		s.log.Info("database already seeded, skipping import", zap.Int("rows", count))
		return nil
	}

	carID := int64(1)
	customerID := int64(1)
	inserted := 0

	for {
		row, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading seed row %d: %w", inserted+1, err)
		}

		in := models.CreateContractInput{
			StartDate:    &row.StartDate,
			EndDate:      &row.EndDate,
			StartKm:      &row.StartKm,
			ContractedKm: &row.ContractedKm,
			MonthlyPrice: &row.MonthlyPrice,
			CarID:        &carID,
			CustomerID:   &customerID,
		}
		if _, err := insert(ctx, in); err != nil {
			return fmt.Errorf("inserting seed row %d: %w", inserted+1, err)
		}

		carID++
		customerID++
		inserted++
	}

	s.log.Info("database seeded", zap.Int("rows", inserted))
	return nil
}

// Column headers of the Bilabonnement subscription export the import job
// delivers.
const (
	colStartDate    = "Start abonnement Dato"
	colEndDate      = "Slut Dato Abonnement Periode"
	colStartKm      = "Koert Km ved abonnemt start"
	colContractedKm = "Aftalt kontraktabonnment KM"
	colMonthlyPrice = "abonnement pris pr maened"
)

// Source dates are day-first.
const seedDateLayout = "02-01-2006"

type csvSource struct {
	file    *os.File
	reader  *csv.Reader
	columns map[string]int
}

// NewCSVSource opens a CSV export and maps its headers to contract fields.
func NewCSVSource(path string) (RowSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening seed file: %w", err)
	}

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("reading seed header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	for _, required := range []string{colStartDate, colEndDate, colStartKm, colContractedKm, colMonthlyPrice} {
		if _, ok := columns[required]; !ok {
			f.Close()
			return nil, fmt.Errorf("seed file missing column %q", required)
		}
	}

	return &csvSource{file: f, reader: r, columns: columns}, nil
}

func (c *csvSource) Next() (*SeedRow, error) {
	record, err := c.reader.Read()
	if err == io.EOF {
		c.file.Close()
		return nil, io.EOF
	}
	if err != nil {
		return nil, err
	}

	startDate, err := c.parseDate(record, colStartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := c.parseDate(record, colEndDate)
	if err != nil {
		return nil, err
	}
	startKm, err := c.parseInt(record, colStartKm)
	if err != nil {
		return nil, err
	}
	contractedKm, err := c.parseInt(record, colContractedKm)
	if err != nil {
		return nil, err
	}
	price, err := c.parseFloat(record, colMonthlyPrice)
	if err != nil {
		return nil, err
	}

	return &SeedRow{
		StartDate:    startDate,
		EndDate:      endDate,
		StartKm:      startKm,
		ContractedKm: contractedKm,
		MonthlyPrice: price,
	}, nil
}

func (c *csvSource) parseDate(record []string, column string) (models.Date, error) {
	raw := record[c.columns[column]]
	t, err := time.Parse(seedDateLayout, raw)
	if err != nil {
		return models.Date{}, fmt.Errorf("column %q: %w", column, err)
	}
	return models.Date{Time: t}, nil
}

func (c *csvSource) parseInt(record []string, column string) (int64, error) {
	raw := record[c.columns[column]]
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", column, err)
	}
	return v, nil
}

func (c *csvSource) parseFloat(record []string, column string) (float64, error) {
	raw := record[c.columns[column]]
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", column, err)
	}
	return v, nil
}
