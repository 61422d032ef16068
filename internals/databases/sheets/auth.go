// internals/databases/sheets/auth.go
package sheets

import (
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
)

const spreadsheetScope = "https://www.googleapis.com/auth/spreadsheets"

func jwtConfigFromJSON(data []byte) (*jwt.Config, error) {
	return google.JWTConfigFromJSON(data, spreadsheetScope)
}
