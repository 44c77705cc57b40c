// Copyright (c) 2026 CampusWorks. All rights reserved.
// Author: pmo.platform@campusworks.dev

/*
Package directory (Postgres) implements the account repository on pgx.

# Schema Table Mapping
  - pmo.account: Master identity, credentials, and page allow-lists.

The allow-list is stored as a TEXT[] column; a stored "*" element marks an
unrestricted grant and round-trips through [access.GrantPages].
*/
package directory

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusworks/pmo-api/internal/access"
	"github.com/campusworks/pmo-api/internal/platform/database/schema"
	"github.com/campusworks/pmo-api/internal/platform/dberr"
	"github.com/campusworks/pmo-api/pkg/pagination"
)

// # Repository Implementation

// PostgresAccountRepository implements [AccountRepository] using pgx.
type PostgresAccountRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAccountRepository creates the production account repository.
func NewPostgresAccountRepository(pool *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{pool: pool}
}

// scanAccount hydrates one account row. The column order must match
// [schema.AccountTable.Columns].
func scanAccount(row pgx.Row) (*Account, error) {
	account := &Account{}
	var pages []string
	err := row.Scan(
		&account.ID,
		&account.Email,
		&account.PasswordHash,
		&account.Role,
		&account.Status,
		&pages,
		&account.Name,
		&account.Position,
		&account.Department,
		&account.Phone,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	account.Grant = access.GrantPages(pages...)
	return account, nil
}

/*
FindByID retrieves an account record from the pmo.account table.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - *Account: Hydrated account entity
  - error: apperr.NotFound or database execution failure
*/
func (repository *PostgresAccountRepository) FindByID(context context.Context, id string) (*Account, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1`,
		strings.Join(schema.Account.Columns(), ", "),
		schema.Account.Table, schema.Account.ID,
	)

	account, err := scanAccount(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "Account")
	}
	return account, nil
}

/*
FindByEmail retrieves an account by its login email (exact, case-sensitive).

Parameters:
  - context: context.Context
  - email: string

Returns:
  - *Account: Hydrated account entity
  - error: apperr.NotFound or database execution failure
*/
func (repository *PostgresAccountRepository) FindByEmail(context context.Context, email string) (*Account, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1`,
		strings.Join(schema.Account.Columns(), ", "),
		schema.Account.Table, schema.Account.Email,
	)

	account, err := scanAccount(repository.pool.QueryRow(context, query, email))
	if err != nil {
		return nil, dberr.Wrap(err, "Account")
	}
	return account, nil
}

/*
List retrieves a filtered, paginated slice of the directory ordered by
creation time (UUIDv7 primary key order).

Parameters:
  - context: context.Context
  - filter: ListFilter
  - params: pagination.Params

Returns:
  - []*Account: Matching page of accounts
  - int: Total matching count
  - error: Database execution failure
*/
func (repository *PostgresAccountRepository) List(context context.Context, filter ListFilter, params pagination.Params) ([]*Account, int, error) {
	conditions := []string{"TRUE"}
	args := []interface{}{}

	if filter.Role != "" {
		args = append(args, string(filter.Role))
		conditions = append(conditions, fmt.Sprintf("%s = $%d", schema.Account.Role, len(args)))
	}
	if filter.Department != "" {
		args = append(args, filter.Department)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", schema.Account.Department, len(args)))
	}
	if filter.OnlyActive {
		args = append(args, string(StatusActive))
		conditions = append(conditions, fmt.Sprintf("%s = $%d", schema.Account.Status, len(args)))
	}
	where := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s`, schema.Account.Table, where)
	var total int
	if err := repository.pool.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "Account")
	}

	args = append(args, params.Limit, params.Offset())
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d`,
		strings.Join(schema.Account.Columns(), ", "),
		schema.Account.Table, where, schema.Account.ID,
		len(args)-1, len(args),
	)

	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Account")
	}
	defer rows.Close()

	accounts := []*Account{}
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "Account")
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "Account")
	}

	return accounts, total, nil
}

/*
Create inserts a new account row. The unique index on email is the
authoritative uniqueness guarantee; violations surface as apperr.Conflict.

Parameters:
  - context: context.Context
  - account: *Account

Returns:
  - error: apperr.Conflict or database execution failure
*/
func (repository *PostgresAccountRepository) Create(context context.Context, account *Account) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		schema.Account.Table,
		strings.Join(schema.Account.Columns(), ", "),
	)

	_, err := repository.pool.Exec(context, query,
		account.ID,
		account.Email,
		account.PasswordHash,
		string(account.Role),
		string(account.Status),
		account.Grant.Pages(),
		account.Name,
		account.Position,
		account.Department,
		account.Phone,
		account.CreatedAt,
		account.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "Account")
	}
	return nil
}

/*
Update rewrites every mutable column of an existing account row.

Parameters:
  - context: context.Context
  - account: *Account

Returns:
  - error: apperr.NotFound, apperr.Conflict, or database execution failure
*/
func (repository *PostgresAccountRepository) Update(context context.Context, account *Account) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6,
		    %s = $7, %s = $8, %s = $9, %s = $10, %s = $11
		WHERE %s = $1`,
		schema.Account.Table,
		schema.Account.Email, schema.Account.PasswordHash, schema.Account.Role,
		schema.Account.Status, schema.Account.AllowedPages,
		schema.Account.Name, schema.Account.Position, schema.Account.Department,
		schema.Account.Phone, schema.Account.UpdatedAt,
		schema.Account.ID,
	)

	tag, err := repository.pool.Exec(context, query,
		account.ID,
		account.Email,
		account.PasswordHash,
		string(account.Role),
		string(account.Status),
		account.Grant.Pages(),
		account.Name,
		account.Position,
		account.Department,
		account.Phone,
		account.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "Account")
	}
	if tag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "Account")
	}
	return nil
}

/*
Delete removes an account row permanently.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - error: apperr.NotFound or database execution failure
*/
func (repository *PostgresAccountRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Account.Table, schema.Account.ID)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "Account")
	}
	if tag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "Account")
	}
	return nil
}
