package console

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mesh-intelligence/cafe/pkg/types"
)

// User-facing messages. Format verbs are filled by the handlers.
const (
	msgItemAdded          = "%s has been added to %s.\n"
	msgItemRemoved        = "%s has been removed from %s.\n"
	msgItemUpdated        = "%s has been updated to %s.\n"
	msgItemMissing        = "%s is not a valid item in %s.\n"
	msgInvalidItemPrice   = "Invalid input. Please enter a valid numeric value for item price."
	msgInvalidNewPrice    = "Invalid input. Please enter a valid numeric value for the new price."
	msgMenuHeader         = "\nMenu:\n"
	msgSearchHit          = "\nItem \"%s\" found in %s!\n"
	msgSearchMiss         = "\"%s\" does not exist.\nTry again or type \"All\" to see all available items.\n"
	msgRecordAdded        = "Customer record for ID %d has been added.\n"
	msgRecordRemoved      = "Customer record for ID %d has been removed.\n"
	msgRecordUpdated      = "Customer record updated successfully."
	msgRecordUpdateFailed = "Invalid record ID or column name."
	msgRecordFound        = "Customer Record for ID %d: %s\n"
	msgRecordMissing      = "Customer Record for ID %d does not exist.\n"
	msgInvalidRecordID    = "Invalid input. Please enter a numeric value for record ID."
	msgInvalidDataType    = "Invalid data type. Please enter 'menu' or 'records'."
	msgInvalidCommand     = "Invalid command. Please enter 'add', 'remove', 'update', 'search', or 'quit'."
	msgUnexpected         = "An error occurred: %v\n"
)

// reportItemError renders a menu operation failure. priceMsg is the
// InvalidPrice text for the operation.
func (s *Session) reportItemError(err error, section, name, priceMsg string) error {
	switch {
	case errors.Is(err, types.ErrInvalidPrice):
		s.logger.Debug("invalid price", "error", err)
		return s.println(priceMsg)
	case errors.Is(err, types.ErrItemNotFound):
		s.logger.Debug("item not found", "error", err)
		return s.printf(msgItemMissing, types.NormalizeItemName(name), section)
	}
	return s.unexpected(err)
}

// reportRecordError renders a customer operation failure. missing is the
// RecordNotFound format for the operation; when it has no verb, id is
// ignored.
func (s *Session) reportRecordError(err error, id int, missing string) error {
	switch {
	case errors.Is(err, types.ErrInvalidID):
		s.logger.Debug("invalid record id", "error", err)
		return s.println(msgInvalidRecordID)
	case errors.Is(err, types.ErrRecordNotFound):
		s.logger.Debug("record not found", "error", err)
		if strings.Contains(missing, "%d") {
			return s.printf(missing, id)
		}
		return s.println(missing)
	}
	return s.unexpected(err)
}

// unexpected renders an error outside the user-error taxonomy, such as a
// backend failure. The session continues.
func (s *Session) unexpected(err error) error {
	s.logger.Error("operation failed", "error", err)
	return s.printf(msgUnexpected, err)
}

// formatPrice renders a price the way the menu shows it: integral prices
// keep one decimal place ("4.0"), others use the shortest exact form.
func formatPrice(p float64) string {
	s := strconv.FormatFloat(p, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
