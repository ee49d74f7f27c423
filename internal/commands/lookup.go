package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pbozzay/kanbanist/internal/exitcode"
	"github.com/pbozzay/kanbanist/internal/model"
	"github.com/pbozzay/kanbanist/internal/session"
)

// maxLetters is the number of lists that can be addressed by letter.
const maxLetters = 26

var (
	errLetterNotFound = errors.New("list letter not found")
	errOutOfRange     = errors.New("task number out of range")
)

// LetteredLists returns the non-backlog lists holding items, in board order.
// The first is addressed as 'a', the next as 'b', and so on.
func LetteredLists(snap model.Snapshot) []model.List {
	var lists []model.List
	for _, l := range snap.Lists {
		if len(l.Items) == 0 {
			continue
		}
		lists = append(lists, l)
		if len(lists) == maxLetters {
			break
		}
	}
	return lists
}

// ResolveListByLetter returns the list shown under letter by the list command.
func ResolveListByLetter(snap model.Snapshot, letter rune) (model.List, error) {
	lists := LetteredLists(snap)
	i := int(letter - 'a')
	if i < 0 || i >= len(lists) {
		return model.List{}, fmt.Errorf("%w: %c", errLetterNotFound, letter)
	}
	return lists[i], nil
}

// resolveRef finds the item a reference points at.
func resolveRef(snap model.Snapshot, ref TaskRef) (model.Item, model.List, error) {
	list := snap.Backlog
	if ref.HasLetter {
		var err error
		if list, err = ResolveListByLetter(snap, ref.Letter); err != nil {
			return model.Item{}, model.List{}, err
		}
	}
	if ref.TaskNum < 1 || ref.TaskNum > len(list.Items) {
		return model.Item{}, model.List{}, fmt.Errorf("%w: %d", errOutOfRange, ref.TaskNum)
	}
	return list.Items[ref.TaskNum-1], list, nil
}

// parseAndResolveRef parses the reference in args and resolves it, writing
// any error to errOut. The returned code is non-zero on failure.
func parseAndResolveRef(sess *session.Session, args []string, errOut io.Writer) (model.Item, model.List, int) {
	ref, err := ParseTaskRef(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return model.Item{}, model.List{}, exitcode.UserError
	}
	return resolveRefOrReport(sess.Snapshot(), ref, errOut)
}

func resolveRefOrReport(snap model.Snapshot, ref TaskRef, errOut io.Writer) (model.Item, model.List, int) {
	it, list, err := resolveRef(snap, ref)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return model.Item{}, model.List{}, exitcode.UserError
	}
	return it, list, exitcode.Success
}

// resolveListArg resolves a list name joined from args, writing any error to
// errOut. The returned code is non-zero on failure.
func resolveListArg(sess *session.Session, args []string, errOut io.Writer) (model.List, int) {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		fmt.Fprintln(errOut, "error: list name required")
		return model.List{}, exitcode.UserError
	}
	return resolveListName(sess, name, errOut)
}

func resolveListName(sess *session.Session, name string, errOut io.Writer) (model.List, int) {
	list, err := sess.ResolveList(name)
	switch {
	case errors.Is(err, session.ErrListNotFound):
		fmt.Fprintf(errOut, "error: list not found: %s\n", name)
		return model.List{}, exitcode.UserError
	case errors.Is(err, session.ErrAmbiguousList):
		fmt.Fprintf(errOut, "error: ambiguous list name: %s\n", name)
		return model.List{}, exitcode.UserError
	case err != nil:
		fmt.Fprintf(errOut, "error: %v\n", err)
		return model.List{}, exitcode.UserError
	}
	return list, exitcode.Success
}

func printOK(quiet bool, out io.Writer) {
	if !quiet {
		fmt.Fprintln(out, "ok")
	}
}
