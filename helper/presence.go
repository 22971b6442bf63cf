package helper

import (
	"presence_board/constants"
	"presence_board/utils"
)

// NextPresence advances a status one step around the fixed cycle
// present -> remote -> trip -> off -> present. Input outside the cycle
// maps to present.
func NextPresence(status string) string {
	for i, s := range constants.PRESENCE_STATUSES {
		if s == status {
			return constants.PRESENCE_STATUSES[(i+1)%len(constants.PRESENCE_STATUSES)]
		}
	}
	return constants.PRESENCE_PRESENT
}

func IsValidPresence(status string) bool {
	return utils.IsValidValueOfConstant(status, constants.PRESENCE_STATUSES)
}
