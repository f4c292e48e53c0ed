package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/lcmendes/weather-gist/models"
)

// psql builds dynamic statements with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	userColumns = `id, username, email, name, cpf, cnpj, password, is_active, is_superuser, reset_pin, reset_pin_expiration, created_at`

	createUser = `INSERT INTO users (username, email, name, cpf, cnpj, password)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING ` + userColumns + `;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1;`

	findAllUsers = `SELECT ` + userColumns + `
    FROM users
    ORDER BY id;`

	saveUserPIN = `UPDATE users
    SET reset_pin = $1, reset_pin_expiration = $2
    WHERE email = $3;`

	// updateUserPassword also clears any pending reset PIN so a consumed or
	// superseded PIN cannot be replayed.
	updateUserPassword = `UPDATE users
    SET password = $1, reset_pin = NULL, reset_pin_expiration = NULL
    WHERE email = $2;`

	updateUserProfile = `UPDATE users
    SET name = COALESCE(NULLIF($1, ''), name), email = COALESCE(NULLIF($2, ''), email)
    WHERE id = $3
    RETURNING ` + userColumns + `;`

	deleteUser = `DELETE FROM users WHERE id = $1;`
)

const (
	// revokeToken is idempotent: revoking the same token twice is a no-op.
	revokeToken = `INSERT INTO revoked_tokens (token_id, user_id, expires_at)
    VALUES ($1, $2, $3)
    ON CONFLICT (token_id) DO NOTHING;`

	isTokenRevoked = `SELECT EXISTS (SELECT 1 FROM revoked_tokens WHERE token_id = $1);`
)

const (
	currentWeatherColumns = `id, city, latitude, longitude, current_temperature, feels_like, temp_min, temp_max, pressure, humidity, visibility, wind_speed, wind_deg, wind_gust, cloudiness, weather_description, observation_datetime, sunrise, sunset, user_id`

	createCurrentWeather = `INSERT INTO current_weather (city, latitude, longitude, current_temperature, feels_like, temp_min, temp_max, pressure, humidity, visibility, wind_speed, wind_deg, wind_gust, cloudiness, weather_description, observation_datetime, sunrise, sunset, user_id)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
    RETURNING ` + currentWeatherColumns + `;`

	getCurrentWeatherByID = `SELECT ` + currentWeatherColumns + `
    FROM current_weather
    WHERE id = $1 AND user_id = $2;`

	getAllCurrentWeatherByUserID = `SELECT ` + currentWeatherColumns + `
    FROM current_weather
    WHERE user_id = $1
    ORDER BY id;`

	deleteCurrentWeather = `DELETE FROM current_weather WHERE id = $1 AND user_id = $2;`
)

const (
	forecastColumns = `id, city, latitude, longitude, date, average_temperature, min_temperature, max_temperature, weather_description, humidity, wind_speed, user_id`

	createForecast = `INSERT INTO forecast_weather (city, latitude, longitude, date, average_temperature, min_temperature, max_temperature, weather_description, humidity, wind_speed, user_id)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    RETURNING ` + forecastColumns + `;`

	getForecastByID = `SELECT ` + forecastColumns + `
    FROM forecast_weather
    WHERE id = $1 AND user_id = $2;`

	getAllForecastsByUserID = `SELECT ` + forecastColumns + `
    FROM forecast_weather
    WHERE user_id = $1
    ORDER BY date, id;`

	deleteForecast = `DELETE FROM forecast_weather WHERE id = $1 AND user_id = $2;`
)

const (
	gistCommentColumns = `id, city, latitude, longitude, comment_date, current_temperature, weather_description, forecast_day_1_date, forecast_day_1_temperature, forecast_day_2_date, forecast_day_2_temperature, forecast_day_3_date, forecast_day_3_temperature, forecast_day_4_date, forecast_day_4_temperature, forecast_day_5_date, forecast_day_5_temperature, github_comment_id, user_id`

	createGistComment = `INSERT INTO gist_comments (city, latitude, longitude, comment_date, current_temperature, weather_description, forecast_day_1_date, forecast_day_1_temperature, forecast_day_2_date, forecast_day_2_temperature, forecast_day_3_date, forecast_day_3_temperature, forecast_day_4_date, forecast_day_4_temperature, forecast_day_5_date, forecast_day_5_temperature, github_comment_id, user_id)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
    RETURNING ` + gistCommentColumns + `;`

	getGistCommentByID = `SELECT ` + gistCommentColumns + `
    FROM gist_comments
    WHERE id = $1 AND user_id = $2;`

	getAllGistCommentsByUserID = `SELECT ` + gistCommentColumns + `
    FROM gist_comments
    WHERE user_id = $1
    ORDER BY id;`

	deleteGistComment = `DELETE FROM gist_comments WHERE id = $1 AND user_id = $2;`
)

// buildCurrentWeatherUpdateQuery dynamically builds an UPDATE statement that
// touches only the non-nil fields of the request. Ownership is enforced in
// the WHERE clause.
func buildCurrentWeatherUpdateQuery(update models.CurrentWeatherUpdate) (string, []any, error) {
	builder := psql.Update(models.CurrentWeather{}.TableName())
	touched := 0

	if update.City != nil {
		builder = builder.Set("city", *update.City)
		touched++
	}
	if update.CurrentTemperature != nil {
		builder = builder.Set("current_temperature", *update.CurrentTemperature)
		touched++
	}
	if update.FeelsLike != nil {
		builder = builder.Set("feels_like", *update.FeelsLike)
		touched++
	}
	if update.Humidity != nil {
		builder = builder.Set("humidity", *update.Humidity)
		touched++
	}
	if update.WeatherDescription != nil {
		builder = builder.Set("weather_description", *update.WeatherDescription)
		touched++
	}
	if update.WindSpeed != nil {
		builder = builder.Set("wind_speed", *update.WindSpeed)
		touched++
	}

	if touched == 0 {
		return "", nil, ErrNothingToUpdate
	}

	return builder.
		Where(sq.Eq{"id": update.ID, "user_id": update.UserID}).
		Suffix("RETURNING " + currentWeatherColumns).
		ToSql()
}

// buildForecastUpdateQuery dynamically builds an UPDATE statement for one
// forecast sample. Only non-nil fields are written.
func buildForecastUpdateQuery(update models.ForecastUpdate) (string, []any, error) {
	builder := psql.Update(models.ForecastSample{}.TableName())
	touched := 0

	if update.City != nil {
		builder = builder.Set("city", *update.City)
		touched++
	}
	if update.Date != nil {
		builder = builder.Set("date", *update.Date)
		touched++
	}
	if update.AverageTemperature != nil {
		builder = builder.Set("average_temperature", *update.AverageTemperature)
		touched++
	}
	if update.MinTemperature != nil {
		builder = builder.Set("min_temperature", *update.MinTemperature)
		touched++
	}
	if update.MaxTemperature != nil {
		builder = builder.Set("max_temperature", *update.MaxTemperature)
		touched++
	}
	if update.WeatherDescription != nil {
		builder = builder.Set("weather_description", *update.WeatherDescription)
		touched++
	}

	if touched == 0 {
		return "", nil, ErrNothingToUpdate
	}

	return builder.
		Where(sq.Eq{"id": update.ID, "user_id": update.UserID}).
		Suffix("RETURNING " + forecastColumns).
		ToSql()
}

// buildGistCommentUpdateQuery dynamically builds an UPDATE statement for one
// stored digest record. Only non-nil fields are written.
func buildGistCommentUpdateQuery(update models.GistCommentUpdate) (string, []any, error) {
	builder := psql.Update(models.GistComment{}.TableName())
	touched := 0

	if update.City != nil {
		builder = builder.Set("city", *update.City)
		touched++
	}
	if update.CurrentTemperature != nil {
		builder = builder.Set("current_temperature", *update.CurrentTemperature)
		touched++
	}
	if update.WeatherDescription != nil {
		builder = builder.Set("weather_description", *update.WeatherDescription)
		touched++
	}

	if touched == 0 {
		return "", nil, ErrNothingToUpdate
	}

	return builder.
		Where(sq.Eq{"id": update.ID, "user_id": update.UserID}).
		Suffix("RETURNING " + gistCommentColumns).
		ToSql()
}
