package constants

// Presence statuses in cycle order: present -> remote -> trip -> off -> present.
const (
	PRESENCE_PRESENT = "present"
	PRESENCE_REMOTE  = "remote"
	PRESENCE_TRIP    = "trip"
	PRESENCE_OFF     = "off"
)

var PRESENCE_STATUSES = []string{
	PRESENCE_PRESENT,
	PRESENCE_REMOTE,
	PRESENCE_TRIP,
	PRESENCE_OFF,
}

// Seat tile defaults
const (
	DEFAULT_SEAT_WIDTH  = 80
	DEFAULT_SEAT_HEIGHT = 40
)

// Error messages
const (
	DATA_INPUT_IS_NOT_NUMBER   = "id must be a number"
	ERROR_INPUT                = "invalid input"
	ERROR_INTERNAL_ERROR       = "internal server error"
	ERROR_PARSE_DATA_TO_LOCALS = "could not read parsed input"
	DASHBOARD_NAME_REQUIRED    = "dashboard_name is required"
	DASHBOARD_NOT_FOUND        = "dashboard not found"
	USER_NOT_FOUND             = "user not found"
	USER_NAME_REQUIRED         = "name is required"
	INVALID_PRESENCE           = "presence must be one of present, remote, trip, off"
	NO_FIELDS_TO_UPDATE        = "no fields to update"
)
