package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email or username already exists.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrWeatherRecordNotFound is returned when a query or update targets a
	// current-weather record (identified by id and user_id) that does not
	// exist in the database.
	ErrWeatherRecordNotFound = errors.New("weather record was not found")

	// ErrForecastRecordNotFound is returned when a query or update targets a
	// forecast record (identified by id and user_id) that does not exist in
	// the database.
	ErrForecastRecordNotFound = errors.New("forecast record was not found")

	// ErrGistCommentNotFound is returned when a query or update targets a
	// gist comment record (identified by id and user_id) that does not exist
	// in the database.
	ErrGistCommentNotFound = errors.New("gist comment record was not found")

	// ErrNothingToUpdate is returned when a dynamic UPDATE request carries no
	// fields to change.
	ErrNothingToUpdate = errors.New("no fields to update")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
