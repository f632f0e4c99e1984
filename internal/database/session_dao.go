package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/protomem/schedule-app/internal/model"
)

type SessionDAO struct {
	Logger *slog.Logger
	*DB
}

func NewSessionDAO(logger *slog.Logger, db *DB) *SessionDAO {
	return &SessionDAO{
		Logger: logger.With("dao", "session"),
		DB:     db,
	}
}

func (dao *SessionDAO) GetByToken(ctx context.Context, token string) (model.Session, error) {
	query, args, err := dao.Builder.
		Select(
			"s.token", "s.created_at", "s.expires_at", "s.user_id",
			"u.email AS user_email",
		).
		From("sessions s").
		Join("users u ON u.id = s.user_id").
		Where(squirrel.Eq{"s.token": token}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Session{}, err
	}

	dao.Logger.Debug("query", "sql", query)

	var session model.Session
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.StructScan(&session); err != nil {
		if IsNoRows(err) {
			return model.Session{}, model.NewError("session", model.ErrNotFound)
		}

		return model.Session{}, err
	}

	return session, nil
}

type InsertSessionDTO struct {
	Token     string
	User      model.ID
	ExpiresAt time.Time
}

func (dao *SessionDAO) Insert(ctx context.Context, dto InsertSessionDTO) error {
	query, args, err := dao.Builder.
		Insert("sessions").
		Columns("token", "user_id", "expires_at").
		Values(dto.Token, dto.User, dto.ExpiresAt).
		ToSql()
	if err != nil {
		return err
	}

	dao.Logger.Debug("query", "sql", query)

	if _, err := dao.ExecContext(ctx, query, args...); err != nil {
		if IsUniqueViolation(err) {
			return model.NewError("session", model.ErrExists)
		}

		return err
	}

	return nil
}

func (dao *SessionDAO) DeleteByToken(ctx context.Context, token string) error {
	query, args, err := dao.Builder.
		Delete("sessions").
		Where(squirrel.Eq{"token": token}).
		ToSql()
	if err != nil {
		return err
	}

	dao.Logger.Debug("query", "sql", query)

	if _, err := dao.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	return nil
}

// DeleteExpired reaps sessions past their expiry.
func (dao *SessionDAO) DeleteExpired(ctx context.Context) (int64, error) {
	query, args, err := dao.Builder.
		Delete("sessions").
		Where(squirrel.Lt{"expires_at": time.Now()}).
		ToSql()
	if err != nil {
		return 0, err
	}

	dao.Logger.Debug("query", "sql", query)

	res, err := dao.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}
