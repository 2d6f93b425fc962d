package db

import (
	"context"

	"github.com/adiwena/verimail/internal/account/entity"
)

const queryCreateUser = `
INSERT INTO account_users (email, password, first_name, last_name, birth_date, otp_secret, role)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, created_at, updated_at`

// CreateUser inserts a new unverified user and returns it with the
// store-assigned ID and timestamps. A duplicate email surfaces as
// goerror.ErrConflict.
func (s *DB) CreateUser(ctx context.Context, in entity.NewUser) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "CreateUser")
	defer func() { s.endSpan(span, err) }()

	var lastName *string
	if in.LastName != "" {
		lastName = &in.LastName
	}

	user := entity.User{
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		BirthDate: in.BirthDate,
		OTPSecret: in.OTPSecret,
		Role:      in.Role,
	}

	err = s.conn.QueryRow(ctx, queryCreateUser,
		in.Email,
		in.Password,
		in.FirstName,
		lastName,
		in.BirthDate,
		in.OTPSecret,
		in.Role,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &user, nil
}
