package db

import "context"

const queryMarkUserVerified = `
UPDATE account_users
SET is_verified = TRUE, updated_at = NOW()
WHERE id = $1 AND is_verified = FALSE`

// MarkUserVerified flips the verified flag exactly once. It reports false
// when the user was already verified, so callers can reject replayed codes.
func (s *DB) MarkUserVerified(ctx context.Context, id int64) (_ bool, err error) {
	ctx, span := s.startSpan(ctx, "MarkUserVerified")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, queryMarkUserVerified, id)
	if err != nil {
		return false, s.mapError(err)
	}

	return tag.RowsAffected() == 1, nil
}
