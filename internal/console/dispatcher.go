package console

import (
	"errors"
	"slices"
	"strings"

	"github.com/mesh-intelligence/cafe/pkg/types"
)

// Prompts, in the order the session asks them.
const (
	promptName          = "What's your name? "
	promptCommand       = "What would you like to do (add, remove, update, search, quit)? "
	promptActionTarget  = "Enter the data type to perform the action (menu, records): "
	promptSearchTarget  = "Enter the data type to search (menu, records): "
	promptSection       = "Enter the section to perform the action (drinks, desserts, meals, sides): "
	promptItemName      = "Enter the name of the item: "
	promptItemPrice     = "Enter item price: "
	promptNewPrice      = "Enter the new price: "
	promptRecordID      = "Enter the record ID: "
	promptCustomerName  = "Enter the customer's name: "
	promptCustomerEmail = "Enter the customer's email: "
	promptCustomerPhone = "Enter the customer's phone number: "
	promptCustomerAge   = "Enter the customer's age: "
	promptColumn        = "Enter the name of the column you want to update: "
	promptNewValue      = "Enter the new value: "
	promptSearchItem    = "\nEnter the name of the item you want to find (type 'all' to see all items): "
	promptSearchRecord  = "Enter the record ID to search: "
)

// command is a top-level session action.
type command string

const (
	cmdAdd    command = "add"
	cmdRemove command = "remove"
	cmdUpdate command = "update"
	cmdSearch command = "search"
)

// target selects which table a command acts on.
type target string

const (
	targetMenu    target = "menu"
	targetRecords target = "records"
)

// stopTokens end the session. Commands are lowercased before matching, so
// the capitalized tokens also match their upper-case spellings.
var stopTokens = []string{"q", "quit", "stop", "Stop", "Q", "Quit"}

// errStop reports that the user asked to end the session.
var errStop = errors.New("stop requested")

// parseCommand maps raw input to a command. Stop tokens return errStop;
// anything unrecognized returns ErrInvalidCommand.
func parseCommand(raw string) (command, error) {
	c := strings.ToLower(strings.TrimSpace(raw))
	switch command(c) {
	case cmdAdd, cmdRemove, cmdUpdate, cmdSearch:
		return command(c), nil
	}
	if slices.Contains(stopTokens, c) {
		return "", errStop
	}
	return "", types.ErrInvalidCommand
}

// parseTarget maps raw input to a target, or returns ErrInvalidDataType.
func parseTarget(raw string) (target, error) {
	switch t := target(strings.ToLower(strings.TrimSpace(raw))); t {
	case targetMenu, targetRecords:
		return t, nil
	}
	return "", types.ErrInvalidDataType
}

// dispatch reads one command and runs it. Operation failures are rendered
// and swallowed; only stop, end of input, and I/O errors are returned.
func (s *Session) dispatch() error {
	raw, err := s.prompt(promptCommand)
	if err != nil {
		return err
	}
	cmd, err := parseCommand(raw)
	if err != nil {
		if errors.Is(err, types.ErrInvalidCommand) {
			s.logger.Debug("invalid command", "input", raw)
			return s.println(msgInvalidCommand)
		}
		return err
	}

	targetPrompt := promptActionTarget
	if cmd == cmdSearch {
		targetPrompt = promptSearchTarget
	}
	raw, err = s.prompt(targetPrompt)
	if err != nil {
		return err
	}
	tgt, err := parseTarget(raw)
	if err != nil {
		s.logger.Debug("invalid data type", "command", cmd, "input", raw)
		return s.println(msgInvalidDataType)
	}

	switch {
	case cmd == cmdSearch && tgt == targetMenu:
		return s.searchMenu()
	case cmd == cmdSearch:
		return s.searchRecords()
	case tgt == targetMenu:
		return s.modifyMenu(cmd)
	default:
		return s.modifyRecords(cmd)
	}
}

func (s *Session) modifyMenu(cmd command) error {
	raw, err := s.prompt(promptSection)
	if err != nil {
		return err
	}
	section := strings.ToLower(raw)
	name, err := s.prompt(promptItemName)
	if err != nil {
		return err
	}

	switch cmd {
	case cmdAdd:
		price, err := s.prompt(promptItemPrice)
		if err != nil {
			return err
		}
		item, err := s.manager.AddItem(section, name, price)
		if err != nil {
			return s.reportItemError(err, section, name, msgInvalidItemPrice)
		}
		return s.printf(msgItemAdded, item.Name, section)
	case cmdRemove:
		item, err := s.manager.RemoveItem(section, name)
		if err != nil {
			return s.reportItemError(err, section, name, msgInvalidItemPrice)
		}
		return s.printf(msgItemRemoved, item.Name, section)
	default:
		price, err := s.prompt(promptNewPrice)
		if err != nil {
			return err
		}
		item, err := s.manager.UpdateItem(section, name, price)
		if err != nil {
			return s.reportItemError(err, section, name, msgInvalidNewPrice)
		}
		return s.printf(msgItemUpdated, item.Name, formatPrice(item.Price))
	}
}

func (s *Session) modifyRecords(cmd command) error {
	id, err := s.prompt(promptRecordID)
	if err != nil {
		return err
	}

	switch cmd {
	case cmdAdd:
		return s.addRecord(id)
	case cmdRemove:
		n, err := s.manager.RemoveRecord(id)
		if err != nil {
			return s.reportRecordError(err, n, msgRecordMissing)
		}
		return s.printf(msgRecordRemoved, n)
	default:
		column, err := s.prompt(promptColumn)
		if err != nil {
			return err
		}
		value, err := s.prompt(promptNewValue)
		if err != nil {
			return err
		}
		if _, err := s.manager.UpdateRecord(id, strings.ToLower(column), value); err != nil {
			return s.reportRecordError(err, 0, msgRecordUpdateFailed)
		}
		return s.println(msgRecordUpdated)
	}
}

// addRecord checks the ID before asking for the remaining fields.
func (s *Session) addRecord(rawID string) error {
	id, err := types.ParseRecordID(rawID)
	if err != nil {
		return s.reportRecordError(err, 0, msgRecordMissing)
	}

	c := types.Customer{ID: id}
	for _, f := range []struct {
		prompt string
		dst    *string
	}{
		{promptCustomerName, &c.Name},
		{promptCustomerEmail, &c.Email},
		{promptCustomerPhone, &c.Phone},
		{promptCustomerAge, &c.Age},
	} {
		v, err := s.prompt(f.prompt)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	if _, err := s.manager.AddRecord(c); err != nil {
		return s.reportRecordError(err, id, msgRecordMissing)
	}
	return s.printf(msgRecordAdded, id)
}

func (s *Session) searchMenu() error {
	query, err := s.prompt(promptSearchItem)
	if err != nil {
		return err
	}

	res, err := s.manager.SearchItems(query)
	if err != nil {
		if errors.Is(err, types.ErrItemNotFound) {
			return s.printf(msgSearchMiss, capitalize(query))
		}
		return s.unexpected(err)
	}

	if res.All {
		if err := s.println(msgMenuHeader); err != nil {
			return err
		}
		for _, l := range res.Menu {
			if err := s.printf("%s: %s\n", l.Section.Title(), strings.Join(l.Items, ", ")); err != nil {
				return err
			}
		}
		return nil
	}
	for _, sec := range res.Found {
		if err := s.printf(msgSearchHit, capitalize(query), sec.Title()); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) searchRecords() error {
	id, err := s.prompt(promptSearchRecord)
	if err != nil {
		return err
	}

	c, err := s.manager.SearchRecord(id)
	if err != nil {
		return s.reportRecordError(err, c.ID, msgRecordMissing)
	}
	return s.printf(msgRecordFound, c.ID, c)
}
