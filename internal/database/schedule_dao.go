package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/protomem/schedule-app/internal/model"
)

// _scheduleColumns joins the owner so every projection carries the owner
// email without a second query.
var _scheduleColumns = []string{
	"s.id", "s.created_at", "s.modified_at",
	"s.title", "s.content", "s.user_id",
	"u.email AS user_email",
}

type ScheduleDAO struct {
	Logger *slog.Logger
	*DB
}

func NewScheduleDAO(logger *slog.Logger, db *DB) *ScheduleDAO {
	return &ScheduleDAO{
		Logger: logger.With("dao", "schedule"),
		DB:     db,
	}
}

func (dao *ScheduleDAO) Find(ctx context.Context) ([]model.Schedule, error) {
	logger := dao.Logger.With("query", "find")

	query, args, err := dao.Builder.
		Select(_scheduleColumns...).
		From("schedules s").
		Join("users u ON u.id = s.user_id").
		OrderBy("s.id ASC").
		ToSql()
	if err != nil {
		return []model.Schedule{}, err
	}

	logger.Debug("build query", "sql", query)

	schedules := []model.Schedule{}
	if err := dao.SelectContext(ctx, &schedules, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)
		return []model.Schedule{}, err
	}

	return schedules, nil
}

func (dao *ScheduleDAO) Get(ctx context.Context, id model.ID) (model.Schedule, error) {
	logger := dao.Logger.With("query", "get")

	query, args, err := dao.Builder.
		Select(_scheduleColumns...).
		From("schedules s").
		Join("users u ON u.id = s.user_id").
		Where(squirrel.Eq{"s.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Schedule{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var schedule model.Schedule
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.StructScan(&schedule); err != nil {
		if IsNoRows(err) {
			return model.Schedule{}, model.NewError("schedule", model.ErrNotFound)
		}

		logger.Warn("failed query execute", "error", err)

		return model.Schedule{}, err
	}

	return schedule, nil
}

type InsertScheduleDTO struct {
	Title   string
	Content string
	User    model.ID
}

func (dao *ScheduleDAO) Insert(ctx context.Context, dto InsertScheduleDTO) (model.ID, error) {
	logger := dao.Logger.With("query", "insert")

	query, args, err := dao.Builder.
		Insert("schedules").
		Columns("title", "content", "user_id").
		Values(dto.Title, dto.Content, dto.User).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	logger.Debug("build query", "sql", query)

	var id model.ID
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.Scan(&id); err != nil {
		logger.Warn("failed query execute", "error", err)
		return 0, err
	}

	return id, nil
}

type UpdateScheduleDTO struct {
	Title   *string
	Content *string
}

func (dao *ScheduleDAO) Update(ctx context.Context, id model.ID, dto UpdateScheduleDTO) error {
	logger := dao.Logger.With("query", "update")

	data := make(map[string]any, 3)
	data["modified_at"] = time.Now()
	if dto.Title != nil {
		data["title"] = *dto.Title
	}
	if dto.Content != nil {
		data["content"] = *dto.Content
	}

	query, args, err := dao.Builder.
		Update("schedules").
		SetMap(data).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	logger.Debug("build query", "sql", query, "args", args)

	if _, err = dao.ExecContext(ctx, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)
		return err
	}

	return nil
}

func (dao *ScheduleDAO) Delete(ctx context.Context, id model.ID) error {
	logger := dao.Logger.With("query", "delete")

	query, args, err := dao.Builder.
		Delete("schedules").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	logger.Debug("build query", "sql", query, "args", args)

	if _, err = dao.ExecContext(ctx, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)
		return err
	}

	return nil
}
