package sheets

import "errors"

var (
	// ErrCredentials indicates the service-account key file could not be
	// read or parsed.
	ErrCredentials = errors.New("failed to load service account credentials")

	// ErrRequestFailed indicates the Sheets API returned a non-2xx status.
	ErrRequestFailed = errors.New("sheets API request failed")

	// ErrDecodeResponse indicates the API response body could not be decoded.
	ErrDecodeResponse = errors.New("failed to decode sheets API response")
)
