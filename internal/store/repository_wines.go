package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/stefpopov/go-wine-cellar/internal/logger"
	"github.com/stefpopov/go-wine-cellar/models"
)

// wineRepository is the PostgreSQL-backed implementation of [WineRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type wineRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewWineRepository constructs a [WineRepository] backed by the provided
// database connection and logger.
func NewWineRepository(db *DB, logger *logger.Logger) WineRepository {
	logger.Debug().Msg("creating wine repository")
	return &wineRepository{
		db:     db,
		logger: logger,
	}
}

func (r *wineRepository) List(ctx context.Context) ([]models.Wine, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listWines)
	if err != nil {
		log.Err(err).Str("func", "*wineRepository.List").Msg("error querying wines")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var wines []models.Wine
	for rows.Next() {
		var wine models.Wine
		if err = scanWine(rows, &wine); err != nil {
			log.Err(err).Str("func", "*wineRepository.List").Msg("error: scanning error")
			return nil, err
		}
		wines = append(wines, wine)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return wines, nil
}

func (r *wineRepository) Get(ctx context.Context, id int64) (models.Wine, error) {
	log := logger.FromContext(ctx)

	var wine models.Wine
	row := r.db.QueryRowContext(ctx, getWine, id)
	if err := scanWine(row, &wine); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Wine{}, ErrNotFound
		}
		log.Err(err).Str("func", "*wineRepository.Get").Int64("id", id).Msg("error: scanning error")
		return models.Wine{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return wine, nil
}

func (r *wineRepository) Create(ctx context.Context, wine models.Wine) (models.Wine, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createWine,
		wine.Name, wine.Price, wine.ProductionDate, wine.Origin, wine.AlcoholDegree)
	if err := scanWine(row, &wine); err != nil {
		log.Err(err).Str("func", "*wineRepository.Create").Msg("error inserting wine")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Wine{}, fmt.Errorf("wine already exists: %w", err)
		default:
			return models.Wine{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return wine, nil
}

func (r *wineRepository) Update(ctx context.Context, wine models.Wine) (models.Wine, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateWine,
		wine.ID, wine.Name, wine.Price, wine.ProductionDate, wine.Origin, wine.AlcoholDegree)
	if err := scanWine(row, &wine); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Wine{}, ErrNotFound
		}
		log.Err(err).Str("func", "*wineRepository.Update").Int64("id", wine.ID).Msg("error updating wine")
		return models.Wine{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return wine, nil
}

func (r *wineRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, removeWine, id)
	if err != nil {
		log.Err(err).Str("func", "*wineRepository.Delete").Int64("id", id).Msg("error deleting wine")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanWine(row scanner, wine *models.Wine) error {
	return row.Scan(&wine.ID, &wine.Name, &wine.Price, &wine.ProductionDate, &wine.Origin, &wine.AlcoholDegree)
}
