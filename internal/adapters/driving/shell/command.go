package shell

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/custodia-labs/occu-cli/internal/core/domain"
	"github.com/custodia-labs/occu-cli/internal/logger"
)

// Command is a parsed shell command. The concrete types below are the only
// implementations.
type Command interface {
	isCommand()
}

// NewCmd creates an event.
type NewCmd struct {
	Title       string
	Description string
}

// ListCmd lists all events.
type ListCmd struct{}

// RemoveCmd removes the event at Index after confirmation.
type RemoveCmd struct {
	Index int
}

// OccurCmd records an occurance on the event at Index.
type OccurCmd struct {
	Index       int
	Title       string
	Description string
	Metadata    *domain.Metadata
}

// HelpCmd prints the command summary.
type HelpCmd struct{}

// ExitCmd leaves the shell.
type ExitCmd struct{}

func (NewCmd) isCommand()    {}
func (ListCmd) isCommand()   {}
func (RemoveCmd) isCommand() {}
func (OccurCmd) isCommand()  {}
func (HelpCmd) isCommand()   {}
func (ExitCmd) isCommand()   {}

// commandNames lists every recognized command name and alias.
var commandNames = map[string]bool{
	"new": true, "list": true, "ls": true, "remove": true, "rm": true,
	"occur": true, "oc": true, "help": true, "h": true, "?": true,
	"exit": true, "quit": true,
}

// Parse turns one input line into a Command.
// It returns a nil Command and a nil error for empty lines and for
// unrecognized command names, which are ignored rather than reported.
// Command names are case sensitive. Quoting applies to arguments only.
func Parse(line string) (Command, error) {
	name, rest := nextField(strings.TrimLeftFunc(line, unicode.IsSpace))
	if name == "" {
		return nil, nil
	}
	if !commandNames[name] {
		logger.Debug("ignoring unrecognized command %q", name)
		return nil, nil
	}

	args, err := tokenize(rest)
	if err != nil {
		return nil, err
	}

	switch name {
	case "new":
		if len(args) < 2 {
			return nil, &RequiresArgsError{Command: name, N: 2}
		}
		return NewCmd{Title: args[0], Description: args[1]}, nil

	case "list", "ls":
		return ListCmd{}, nil

	case "remove", "rm":
		if len(args) < 1 {
			return nil, &RequiresArgsError{Command: name, N: 1}
		}
		index, err := parseIndex(args[0])
		if err != nil {
			return nil, err
		}
		return RemoveCmd{Index: index}, nil

	case "occur", "oc":
		if len(args) < 3 {
			return nil, &RequiresArgsError{Command: name, N: 3}
		}
		index, err := parseIndex(args[0])
		if err != nil {
			return nil, err
		}
		metadata, err := parseMetadata(args[3:])
		if err != nil {
			return nil, err
		}
		return OccurCmd{Index: index, Title: args[1], Description: args[2], Metadata: metadata}, nil

	case "help", "h", "?":
		return HelpCmd{}, nil

	case "exit", "quit":
		return ExitCmd{}, nil

	default:
		return nil, nil
	}
}

func parseIndex(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidIndex, arg, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w %q: must not be negative", ErrInvalidIndex, arg)
	}
	return n, nil
}

// parseMetadata reads key=value pairs. Keys are validated later, by the
// service, so the parser only checks the pair shape.
func parseMetadata(pairs []string) (*domain.Metadata, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	metadata := domain.NewMetadata()
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q is not key=value", domain.ErrInvalidMetadata, pair)
		}
		metadata.Set(key, value)
	}
	return metadata, nil
}

// tokenize splits s on runs of whitespace. A field that opens with a
// double quote runs to the next double quote, so `"v1 release"` is one
// field; text glued to the closing quote stays in that field. Quotes
// inside a field are literal, so unquoted input splits exactly like
// strings.Fields.
func tokenize(s string) ([]string, error) {
	var fields []string
	for {
		s = strings.TrimLeftFunc(s, unicode.IsSpace)
		if s == "" {
			return fields, nil
		}

		var field string
		if s[0] == '"' {
			end := strings.IndexByte(s[1:], '"')
			if end < 0 {
				return nil, ErrUnterminatedQuote
			}
			quoted := s[1 : end+1]
			tail, rest := nextField(s[end+2:])
			field, s = quoted+tail, rest
		} else {
			field, s = nextField(s)
		}
		fields = append(fields, field)
	}
}

// nextField returns the text up to the first whitespace and the remainder.
func nextField(s string) (field, rest string) {
	if i := strings.IndexFunc(s, unicode.IsSpace); i >= 0 {
		return s[:i], s[i:]
	}
	return s, ""
}
