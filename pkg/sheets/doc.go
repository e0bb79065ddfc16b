// Package sheets is a minimal Google Sheets REST client covering the two
// operations the helpdesk service needs: appending audit rows and reading
// roster ranges. Authentication uses a service-account key file via
// golang.org/x/oauth2/google; the resulting http.Client refreshes tokens
// transparently.
package sheets
