package ent

import (
	"context"
	"fmt"
	"time"

	"github.com/anzhiyu-c/fintaa-site/pkg/domain/model"
	"github.com/anzhiyu-c/fintaa-site/pkg/domain/repository"

	entsql "entgo.io/ent/dialect/sql"
)

const contactSubmissionsTable = "contact_submissions"

var contactSubmissionColumns = []string{
	"id", "name", "email", "phone", "company", "service", "budget", "timeline",
	"message", "created_at", "is_responded", "notes",
}

type contactSubmissionRepo struct {
	sqlBase
}

// NewContactSubmissionRepo 创建联系表单提交仓库，exec 可以是 *sql.DB 或 *sql.Tx
func NewContactSubmissionRepo(exec executor, dbDialect string) repository.ContactSubmissionRepository {
	return &contactSubmissionRepo{sqlBase{exec: exec, dialect: dbDialect}}
}

func (r *contactSubmissionRepo) Create(ctx context.Context, s *model.ContactSubmission) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	ib := r.builder().Insert(contactSubmissionsTable).
		Columns("name", "email", "phone", "company", "service", "budget", "timeline",
			"message", "created_at", "is_responded", "notes").
		Values(s.Name, s.Email, s.Phone, s.Company, s.Service, s.Budget, s.Timeline,
			s.Message, r.timeArg(s.CreatedAt), s.IsResponded, s.Notes)
	id, err := r.insert(ctx, ib)
	if err != nil {
		return fmt.Errorf("创建联系表单提交失败: %w", err)
	}
	s.ID = id
	return nil
}

func (r *contactSubmissionRepo) FindByID(ctx context.Context, id uint) (*model.ContactSubmission, error) {
	query, args := r.selector().Where(entsql.EQ("id", id)).Query()
	s, err := scanContactSubmission(r.exec.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, notFound(err)
	}
	return s, nil
}

func (r *contactSubmissionRepo) FindByEmail(ctx context.Context, email string) (*model.ContactSubmission, error) {
	query, args := r.selector().
		Where(entsql.EQ("email", email)).
		OrderBy(entsql.Asc("id")).
		Limit(1).
		Query()
	s, err := scanContactSubmission(r.exec.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, notFound(err)
	}
	return s, nil
}

func (r *contactSubmissionRepo) List(ctx context.Context, opts *model.ListContactSubmissionsOptions) ([]*model.ContactSubmission, int, error) {
	preds := r.listPredicates(opts)

	countSel := r.builder().Select(entsql.Count("*")).From(r.builder().Table(contactSubmissionsTable))
	for _, p := range preds {
		countSel.Where(p)
	}
	total, err := r.count(ctx, countSel)
	if err != nil {
		return nil, 0, fmt.Errorf("统计联系表单提交失败: %w", err)
	}

	page, pageSize := opts.Page, opts.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = model.DefaultSubmissionPageSize
	}
	if pageSize > model.MaxSubmissionPageSize {
		pageSize = model.MaxSubmissionPageSize
	}
	// 超出范围的页码按空页处理
	if page > total/pageSize+1 {
		return []*model.ContactSubmission{}, total, nil
	}

	sel := r.selector()
	for _, p := range preds {
		sel.Where(p)
	}
	sel.OrderBy(entsql.Desc("created_at"), entsql.Desc("id")).
		Limit(pageSize).
		Offset((page - 1) * pageSize)

	query, args := sel.Query()
	rows, err := r.exec.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("查询联系表单提交失败: %w", err)
	}
	defer rows.Close()

	list := make([]*model.ContactSubmission, 0)
	for rows.Next() {
		s, err := scanContactSubmission(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, s)
	}
	return list, total, rows.Err()
}

func (r *contactSubmissionRepo) listPredicates(opts *model.ListContactSubmissionsOptions) []*entsql.Predicate {
	var preds []*entsql.Predicate
	if opts.Service != "" {
		preds = append(preds, entsql.EQ("service", opts.Service))
	}
	if opts.IsResponded != nil {
		preds = append(preds, entsql.EQ("is_responded", *opts.IsResponded))
	}
	if opts.CreatedAfter != nil {
		preds = append(preds, entsql.GTE("created_at", r.timeArg(*opts.CreatedAfter)))
	}
	if opts.CreatedBefore != nil {
		preds = append(preds, entsql.LT("created_at", r.timeArg(*opts.CreatedBefore)))
	}
	if opts.Search != "" {
		preds = append(preds, entsql.Or(
			entsql.ContainsFold("name", opts.Search),
			entsql.ContainsFold("email", opts.Search),
			entsql.ContainsFold("message", opts.Search),
		))
	}
	return preds
}

func (r *contactSubmissionRepo) SetResponded(ctx context.Context, ids []uint, responded bool) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	n, err := r.execQuery(ctx, r.builder().Update(contactSubmissionsTable).
		Set("is_responded", responded).
		Where(entsql.In("id", uintArgs(ids)...)))
	if err != nil {
		return 0, fmt.Errorf("更新回复状态失败: %w", err)
	}
	return n, nil
}

func (r *contactSubmissionRepo) UpdateNotes(ctx context.Context, id uint, notes string) error {
	_, err := r.execQuery(ctx, r.builder().Update(contactSubmissionsTable).
		Set("notes", notes).
		Where(entsql.EQ("id", id)))
	if err != nil {
		return fmt.Errorf("更新备注失败: %w", err)
	}
	return nil
}

func (r *contactSubmissionRepo) CountPending(ctx context.Context) (int, error) {
	sel := r.builder().Select(entsql.Count("*")).
		From(r.builder().Table(contactSubmissionsTable)).
		Where(entsql.EQ("is_responded", false))
	return r.count(ctx, sel)
}

func (r *contactSubmissionRepo) Delete(ctx context.Context, ids []uint) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	return r.execQuery(ctx, r.builder().Delete(contactSubmissionsTable).
		Where(entsql.In("id", uintArgs(ids)...)))
}

func (r *contactSubmissionRepo) DeleteAll(ctx context.Context) (int, error) {
	return r.execQuery(ctx, r.builder().Delete(contactSubmissionsTable))
}

func (r *contactSubmissionRepo) selector() *entsql.Selector {
	return r.builder().Select(contactSubmissionColumns...).From(r.builder().Table(contactSubmissionsTable))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContactSubmission(row rowScanner) (*model.ContactSubmission, error) {
	var s model.ContactSubmission
	var createdAt nullTime
	if err := row.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Company, &s.Service, &s.Budget,
		&s.Timeline, &s.Message, &createdAt, &s.IsResponded, &s.Notes); err != nil {
		return nil, err
	}
	s.CreatedAt = createdAt.Time
	return &s, nil
}
