package commands

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"
)

// TaskRef represents a parsed task reference.
type TaskRef struct {
	Letter    rune // 0 if no letter, 'a'-'z' otherwise
	TaskNum   int  // 1-based task number
	HasLetter bool // true if a list letter was provided
}

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// ParseTaskRef parses the task reference in args[0].
//
// Accepted forms:
//   - all digits (e.g. 3): item in the backlog
//   - <letter><digits> (e.g. a1, b12): item in the lettered list
//
// Anything else is an invalid task reference.
func ParseTaskRef(args []string) (TaskRef, error) {
	if len(args) == 0 {
		return TaskRef{}, ErrTaskRefRequired
	}
	return parseToken(args[0])
}

// ParseTaskRefs parses every arg as a task reference.
func ParseTaskRefs(args []string) ([]TaskRef, error) {
	if len(args) == 0 {
		return nil, ErrTaskRefRequired
	}
	refs := make([]TaskRef, 0, len(args))
	for _, arg := range args {
		ref, err := parseToken(arg)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func parseToken(tok string) (TaskRef, error) {
	if isAllDigits(tok) {
		num, err := strconv.Atoi(tok)
		if err != nil {
			return TaskRef{}, fmt.Errorf("invalid task reference: %s", tok)
		}
		return TaskRef{TaskNum: num}, nil
	}

	if len(tok) > 1 && isLetter(rune(tok[0])) && isAllDigits(tok[1:]) {
		num, err := strconv.Atoi(tok[1:])
		if err != nil {
			return TaskRef{}, fmt.Errorf("invalid task reference: %s", tok)
		}
		return TaskRef{Letter: rune(tok[0]), TaskNum: num, HasLetter: true}, nil
	}

	return TaskRef{}, fmt.Errorf("invalid task reference: %s", tok)
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// isLetter returns true if r is a lowercase letter a-z.
func isLetter(r rune) bool {
	return r >= 'a' && r <= 'z'
}
