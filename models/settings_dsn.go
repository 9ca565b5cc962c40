package models

import (
	"fmt"
	"net/url"
)

// dsn builds a postgres:// URL for the given database name. Credentials are
// escaped so passwords containing reserved characters survive the round
// trip through the driver's URL parser.
func (d DatabaseSettings) dsn(dbName string) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   "/" + dbName,
	}

	mode := d.SSLMode
	if mode == "" {
		mode = "disable"
	}
	q := url.Values{}
	q.Set("sslmode", mode)
	u.RawQuery = q.Encode()

	return u.String()
}
