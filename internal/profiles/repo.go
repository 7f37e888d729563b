package profiles

import (
	"context"
	"fmt"

	"github.com/2beens/gymtracker/internal/auth"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) CreateAccount(ctx context.Context, account auth.Account) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("email", account.Email))

	var name *string
	if account.Name != "" {
		name = &account.Name
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO profiles (id, email, name, password_hash, is_admin)
		VALUES ($1, $2, $3, $4, $5)
	`,
		account.ID, account.Email, name, account.PasswordHash, account.IsAdmin,
	)
	if pkg.IsUniqueViolationError(err) {
		return auth.ErrEmailTaken
	}
	return err
}

func (r *Repo) AccountByEmail(ctx context.Context, email string) (_ *auth.Account, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.account_by_email")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.account(ctx, `
		SELECT id, email, COALESCE(name, ''), password_hash, is_admin
		FROM profiles
		WHERE email = $1
	`, email)
}

func (r *Repo) AccountByID(ctx context.Context, id string) (_ *auth.Account, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.account_by_id")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	return r.account(ctx, `
		SELECT id, email, COALESCE(name, ''), password_hash, is_admin
		FROM profiles
		WHERE id = $1
	`, id)
}

func (r *Repo) account(ctx context.Context, query string, arg string) (*auth.Account, error) {
	account := &auth.Account{}
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&account.ID,
		&account.Email,
		&account.Name,
		&account.PasswordHash,
		&account.IsAdmin,
	)
	if pkg.IsNoRowsError(err) {
		return nil, auth.ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	profile, err := scanProfile(r.db.QueryRow(ctx, `
		SELECT id, email, name, avatar_url, is_admin, created_at
		FROM profiles
		WHERE id = $1
	`, id))
	if pkg.IsNoRowsError(err) {
		return nil, ErrProfileNotFound
	}
	return profile, err
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.get_by_email")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("email", email))

	profile, err := scanProfile(r.db.QueryRow(ctx, `
		SELECT id, email, name, avatar_url, is_admin, created_at
		FROM profiles
		WHERE email = $1
	`, pkg.NormalizeEmail(email)))
	if pkg.IsNoRowsError(err) {
		return nil, ErrProfileNotFound
	}
	return profile, err
}

func (r *Repo) UpdateName(ctx context.Context, id string, name string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.update_name")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	var namePtr *string
	if name != "" {
		namePtr = &name
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE profiles SET name = $1 WHERE id = $2
	`, namePtr, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// SetAdmin grants or revokes the admin flag, used by the admin CLI.
func (r *Repo) SetAdmin(ctx context.Context, email string, isAdmin bool) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.set_admin")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("email", email), attribute.Bool("admin", isAdmin))

	tag, err := r.db.Exec(ctx, `
		UPDATE profiles SET is_admin = $1 WHERE email = $2
	`, isAdmin, pkg.NormalizeEmail(email))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// List returns every profile, oldest first.
func (r *Repo) List(ctx context.Context) (_ []Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT id, email, name, avatar_url, is_admin, created_at FROM get_all_profiles()`)
	if err != nil {
		return nil, fmt.Errorf("get all profiles: %w", err)
	}
	defer rows.Close()

	profiles := make([]Profile, 0)
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *profile)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}

func scanProfile(row pgx.Row) (*Profile, error) {
	profile := &Profile{}
	if err := row.Scan(
		&profile.ID,
		&profile.Email,
		&profile.Name,
		&profile.AvatarURL,
		&profile.IsAdmin,
		&profile.CreatedAt,
	); err != nil {
		return nil, err
	}
	return profile, nil
}
