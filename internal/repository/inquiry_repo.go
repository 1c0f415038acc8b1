package repository

import (
	"database/sql"
	"fmt"

	"cleanouts/internal/db"
)

const (
	InquiryKindContact = "contact"
	InquiryKindQuote   = "quote"
)

type InquiryRepository struct {
	DB *sql.DB
}

func NewInquiryRepository(database *sql.DB) *InquiryRepository {
	return &InquiryRepository{DB: database}
}

func (r *InquiryRepository) CreateInquiry(iq *db.Inquiry) error {
	query := `
		INSERT INTO inquiries
		(kind, name, email, phone, message, property_type, square_footage, has_hazard, has_lawn, estimated_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at`
	return r.DB.QueryRow(query,
		iq.Kind,
		iq.Name,
		iq.Email,
		iq.Phone,
		iq.Message,
		iq.PropertyType,
		iq.SquareFootage,
		iq.HasHazard,
		iq.HasLawn,
		iq.EstimatedAmount,
		iq.CreatedAt,
	).Scan(&iq.ID, &iq.CreatedAt)
}

func (r *InquiryRepository) ListInquiries(kind string) ([]db.Inquiry, error) {
	query := `
		SELECT id, kind, name, email, phone, message, property_type, square_footage, has_hazard, has_lawn, estimated_amount, created_at
		FROM inquiries`
	args := []interface{}{}
	if kind != "" {
		query += ` WHERE kind = $1`
		args = append(args, kind)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing inquiries: %w", err)
	}
	defer rows.Close()

	var inquiries []db.Inquiry
	for rows.Next() {
		var iq db.Inquiry
		err := rows.Scan(
			&iq.ID, &iq.Kind, &iq.Name, &iq.Email, &iq.Phone, &iq.Message,
			&iq.PropertyType, &iq.SquareFootage, &iq.HasHazard, &iq.HasLawn, &iq.EstimatedAmount, &iq.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning inquiry: %w", err)
		}
		inquiries = append(inquiries, iq)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating inquiry rows: %w", err)
	}
	return inquiries, nil
}
