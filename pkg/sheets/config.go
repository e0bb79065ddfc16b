package sheets

// Config holds the spreadsheet wiring for the service. Leaving
// CredentialsFile or SpreadsheetID empty disables the integration; the
// service then falls back to log-only auditing and skips roster validation.
type Config struct {
	CredentialsFile string `env:"GOOGLE_CREDENTIALS_FILE"`                // CredentialsFile is the path to the service-account JSON key.
	SpreadsheetID   string `env:"GOOGLE_SPREADSHEET_ID"`                  // SpreadsheetID is the target spreadsheet.
	AuditSheet      string `env:"GOOGLE_AUDIT_SHEET" envDefault:"Log"`    // AuditSheet receives one appended row per audit event.
	RosterSheet     string `env:"GOOGLE_ROSTER_SHEET"`                    // RosterSheet holds the group roster; empty disables validation.
	RosterRange     string `env:"GOOGLE_ROSTER_RANGE" envDefault:"A2:A"`  // RosterRange is the roster column range, header excluded.
}

// Enabled reports whether the spreadsheet integration is configured.
func (c Config) Enabled() bool {
	return c.CredentialsFile != "" && c.SpreadsheetID != ""
}
