package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/protomem/schedule-app/internal/model"
)

var _commentColumns = []string{
	"c.id", "c.created_at", "c.modified_at",
	"c.content", "c.schedule_id", "c.user_id",
	"u.email AS user_email",
}

type CommentDAO struct {
	Logger *slog.Logger
	*DB
}

func NewCommentDAO(logger *slog.Logger, db *DB) *CommentDAO {
	return &CommentDAO{
		Logger: logger.With("dao", "comment"),
		DB:     db,
	}
}

// FindBySchedule returns all comments under a schedule in insertion order.
func (dao *CommentDAO) FindBySchedule(ctx context.Context, schedule model.ID) ([]model.Comment, error) {
	logger := dao.Logger.With("query", "findBySchedule")

	query, args, err := dao.Builder.
		Select(_commentColumns...).
		From("comments c").
		Join("users u ON u.id = c.user_id").
		Where(squirrel.Eq{"c.schedule_id": schedule}).
		OrderBy("c.id ASC").
		ToSql()
	if err != nil {
		return []model.Comment{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	comments := []model.Comment{}
	if err := dao.SelectContext(ctx, &comments, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)
		return []model.Comment{}, err
	}

	return comments, nil
}

func (dao *CommentDAO) Get(ctx context.Context, id model.ID) (model.Comment, error) {
	logger := dao.Logger.With("query", "get")

	query, args, err := dao.Builder.
		Select(_commentColumns...).
		From("comments c").
		Join("users u ON u.id = c.user_id").
		Where(squirrel.Eq{"c.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Comment{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var comment model.Comment
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.StructScan(&comment); err != nil {
		if IsNoRows(err) {
			return model.Comment{}, model.NewError("comment", model.ErrNotFound)
		}

		logger.Warn("failed query execute", "error", err)

		return model.Comment{}, err
	}

	return comment, nil
}

type InsertCommentDTO struct {
	Content  string
	Schedule model.ID
	User     model.ID
}

func (dao *CommentDAO) Insert(ctx context.Context, dto InsertCommentDTO) (model.ID, error) {
	logger := dao.Logger.With("query", "insert")

	query, args, err := dao.Builder.
		Insert("comments").
		Columns("content", "schedule_id", "user_id").
		Values(dto.Content, dto.Schedule, dto.User).
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

type UpdateCommentDTO struct {
	Content *string
}

func (dao *CommentDAO) Update(ctx context.Context, id model.ID, dto UpdateCommentDTO) error {
	logger := dao.Logger.With("query", "update")

	data := make(map[string]any, 2)
	data["modified_at"] = time.Now()
	if dto.Content != nil {
		data["content"] = *dto.Content
	}

	query, args, err := dao.Builder.
		Update("comments").
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

func (dao *CommentDAO) Delete(ctx context.Context, id model.ID) error {
	logger := dao.Logger.With("query", "delete")

	query, args, err := dao.Builder.
		Delete("comments").
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
