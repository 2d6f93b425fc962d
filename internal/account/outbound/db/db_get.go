package db

import (
	"context"

	"github.com/adiwena/verimail/internal/account/entity"
)

const queryGetUserByEmail = `
SELECT id, email, first_name, COALESCE(last_name, ''), birth_date, otp_secret, is_verified, role, created_at, updated_at
FROM account_users
WHERE email = $1`

// GetUserByEmail returns the user with the exact email, byte for byte. Lookup
// is case-sensitive on purpose: A@x.com and a@x.com are distinct accounts.
func (s *DB) GetUserByEmail(ctx context.Context, email string) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByEmail")
	defer func() { s.endSpan(span, err) }()

	var user entity.User
	err = s.conn.QueryRow(ctx, queryGetUserByEmail, email).Scan(
		&user.ID,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.BirthDate,
		&user.OTPSecret,
		&user.IsVerified,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &user, nil
}
