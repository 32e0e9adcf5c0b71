package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"mentorlink/internal/database"
	"mentorlink/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db database.DB
}

func NewUserRepository(db database.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, name, email, password_hash, role, skills, interests, bio,
	sent_requests, received_requests, followers, created_at, updated_at`

func (r *UserRepository) CreateUser(ctx context.Context, u user.User) error {
	sent, received, err := marshalRequestLists(u)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO users
		 (id, name, email, password_hash, role, skills, interests, bio,
		  sent_requests, received_requests, followers)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		u.ID, u.Name, u.Email, u.PasswordHash, string(u.Role),
		u.Skills, u.Interests, u.Bio,
		sent, received, followersOrEmpty(u.Followers),
	)
	return err
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}

func (r *UserRepository) UpdateProfile(ctx context.Context, u user.User) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE users
		 SET name = $2, role = $3, skills = $4, interests = $5, bio = $6,
		     updated_at = now()
		 WHERE id = $1
		 RETURNING `+userColumns,
		u.ID, u.Name, string(u.Role), u.Skills, u.Interests, u.Bio,
	)
	return scanUser(row)
}

func (r *UserRepository) ListUsers(ctx context.Context, f user.ListFilter) ([]user.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+`
		 FROM users
		 WHERE ($1 = '' OR role = $1)
		   AND ($2 = '' OR EXISTS (
		       SELECT 1 FROM unnest(skills) AS s WHERE s ILIKE '%' || $2 || '%'))
		 ORDER BY created_at ASC`,
		string(f.Role), f.Skill,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectUsers(rows)
}

func (r *UserRepository) GetUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]user.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ANY($1) ORDER BY created_at ASC`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectUsers(rows)
}

// UpdatePair runs mutate over both user records inside one transaction with
// the rows locked in id order, then persists the request and follower
// collections of both sides. Locking in id order keeps two concurrent pair
// updates from deadlocking each other.
func (r *UserRepository) UpdatePair(ctx context.Context, aID, bID uuid.UUID, mutate func(a, b *user.User) error) error {
	if aID == bID {
		return fmt.Errorf("pair update requires two distinct users")
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	first, second := aID, bID
	if bytesLess(bID, aID) {
		first, second = bID, aID
	}

	lockOne := func(id uuid.UUID) (user.User, error) {
		row := tx.QueryRow(ctx,
			`SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`, id)
		return scanUser(row)
	}

	u1, err := lockOne(first)
	if err != nil {
		return err
	}
	u2, err := lockOne(second)
	if err != nil {
		return err
	}

	a, b := &u1, &u2
	if u1.ID != aID {
		a, b = &u2, &u1
	}

	if err := mutate(a, b); err != nil {
		return err
	}

	for _, u := range []*user.User{a, b} {
		sent, received, err := marshalRequestLists(*u)
		if err != nil {
			return err
		}
		n, err := tx.Exec(ctx,
			`UPDATE users
			 SET sent_requests = $2, received_requests = $3, followers = $4,
			     updated_at = now()
			 WHERE id = $1`,
			u.ID, sent, received, followersOrEmpty(u.Followers),
		)
		if err != nil {
			return err
		}
		if n == 0 {
			return user.ErrNotFound
		}
	}

	return tx.Commit(ctx)
}

func collectUsers(rows database.Rows) ([]user.User, error) {
	out := make([]user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type userRow interface {
	Scan(dest ...any) error
}

func scanUser(row userRow) (user.User, error) {
	var (
		u        user.User
		role     string
		sent     []byte
		received []byte
	)
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &role,
		&u.Skills, &u.Interests, &u.Bio,
		&sent, &received, &u.Followers,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}

	u.Role = user.Role(role)
	if err := unmarshalEntries(sent, &u.SentRequests); err != nil {
		return user.User{}, err
	}
	if err := unmarshalEntries(received, &u.ReceivedRequests); err != nil {
		return user.User{}, err
	}
	return u, nil
}

func marshalRequestLists(u user.User) (sent, received []byte, err error) {
	sent, err = json.Marshal(entriesOrEmpty(u.SentRequests))
	if err != nil {
		return nil, nil, err
	}
	received, err = json.Marshal(entriesOrEmpty(u.ReceivedRequests))
	if err != nil {
		return nil, nil, err
	}
	return sent, received, nil
}

func unmarshalEntries(raw []byte, out *[]user.RequestEntry) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, out)
}

func entriesOrEmpty(entries []user.RequestEntry) []user.RequestEntry {
	if entries == nil {
		return []user.RequestEntry{}
	}
	return entries
}

func followersOrEmpty(followers []uuid.UUID) []uuid.UUID {
	if followers == nil {
		return []uuid.UUID{}
	}
	return followers
}

func bytesLess(a, b uuid.UUID) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
