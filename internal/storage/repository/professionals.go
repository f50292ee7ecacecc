package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/khussac/proconnect-api/internal/models"
	"github.com/khussac/proconnect-api/internal/storage"
)

const professionalColumns = `id, name, profession, email, phone, password_hash,
			      profile_image, gallery, description, services,
			      district, city, address, lat, lng,
			      rate_min, rate_max, rate_currency, rate_type,
			      rating, reviews_count, is_active`

// ListActive возвращает активные записи каталога в порядке добавления.
func (s *Storage) ListActive(ctx context.Context) ([]*models.Professional, error) {
	const op = "repository.ListActive"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + professionalColumns + `
			  FROM professionals
			  WHERE is_active = TRUE
			  ORDER BY sort_order`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Professional
	for rows.Next() {
		p, err := scanProfessional(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetByID возвращает запись по идентификатору.
func (s *Storage) GetByID(ctx context.Context, id int) (*models.Professional, error) {
	const op = "repository.GetByID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + professionalColumns + `
			  FROM professionals
			  WHERE id = $1`
	p, err := scanProfessional(s.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// GetByEmail возвращает запись по email.
func (s *Storage) GetByEmail(ctx context.Context, email string) (*models.Professional, error) {
	const op = "repository.GetByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + professionalColumns + `
			  FROM professionals
			  WHERE email = $1
			  ORDER BY sort_order
			  LIMIT 1`
	p, err := scanProfessional(s.DB.QueryRowContext(ctx, query, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// Create добавляет новую запись каталога.
func (s *Storage) Create(ctx context.Context, p *models.Professional) error {
	const op = "repository.Create"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	gallery, services, err := marshalLists(p)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `INSERT INTO professionals (id, name, profession, email, phone, password_hash,
			      profile_image, gallery, description, services,
			      district, city, address, lat, lng,
			      rate_min, rate_max, rate_currency, rate_type,
			      rating, reviews_count, is_active)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			      $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`
	_, err = s.DB.ExecContext(ctx, query,
		p.ID, p.Name, p.Profession, p.Email, p.Phone, p.PasswordHash,
		p.ProfileImage, gallery, p.Description, services,
		p.Location.District, p.Location.City, p.Location.Address,
		p.Location.Coordinates.Lat, p.Location.Coordinates.Lng,
		p.Rate.Min, p.Rate.Max, p.Rate.Currency, p.Rate.Type,
		p.Rating, p.ReviewsCount, p.IsActive)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrDuplicateID)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Update заменяет поля записи с тем же идентификатором.
func (s *Storage) Update(ctx context.Context, p *models.Professional) error {
	const op = "repository.Update"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	gallery, services, err := marshalLists(p)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `UPDATE professionals
			  SET name = $2, profession = $3, email = $4, phone = $5, password_hash = $6,
			      profile_image = $7, gallery = $8, description = $9, services = $10,
			      district = $11, city = $12, address = $13, lat = $14, lng = $15,
			      rate_min = $16, rate_max = $17, rate_currency = $18, rate_type = $19,
			      rating = $20, reviews_count = $21, is_active = $22
			  WHERE id = $1`
	res, err := s.DB.ExecContext(ctx, query,
		p.ID, p.Name, p.Profession, p.Email, p.Phone, p.PasswordHash,
		p.ProfileImage, gallery, p.Description, services,
		p.Location.District, p.Location.City, p.Location.Address,
		p.Location.Coordinates.Lat, p.Location.Coordinates.Lng,
		p.Rate.Min, p.Rate.Max, p.Rate.Currency, p.Rate.Type,
		p.Rating, p.ReviewsCount, p.IsActive)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfessional(row rowScanner) (*models.Professional, error) {
	p := &models.Professional{}
	var gallery, services []byte
	if err := row.Scan(&p.ID, &p.Name, &p.Profession, &p.Email, &p.Phone, &p.PasswordHash,
		&p.ProfileImage, &gallery, &p.Description, &services,
		&p.Location.District, &p.Location.City, &p.Location.Address,
		&p.Location.Coordinates.Lat, &p.Location.Coordinates.Lng,
		&p.Rate.Min, &p.Rate.Max, &p.Rate.Currency, &p.Rate.Type,
		&p.Rating, &p.ReviewsCount, &p.IsActive); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(gallery, &p.Gallery); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(services, &p.Services); err != nil {
		return nil, err
	}
	return p, nil
}

func marshalLists(p *models.Professional) ([]byte, []byte, error) {
	gallery := p.Gallery
	if gallery == nil {
		gallery = []string{}
	}
	services := p.Services
	if services == nil {
		services = []string{}
	}
	galleryJSON, err := json.Marshal(gallery)
	if err != nil {
		return nil, nil, err
	}
	servicesJSON, err := json.Marshal(services)
	if err != nil {
		return nil, nil, err
	}
	return galleryJSON, servicesJSON, nil
}
