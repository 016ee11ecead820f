package diff

import "strings"

// resolve decides the instruction for a single key. It always shows the
// key first, then either applies the auto-accept default or asks the
// operator, re-prompting until a recognized choice is entered. A nil
// instruction with a nil error means the key resolved to a no-op.
func (s *Session) resolve(layout Layout, key string, left, right any, status Status, autoAccept bool) (*Instruction, error) {
	s.presenter.Row(layout, key, left, right, status)

	if status == StatusUnchanged {
		return s.resolveUnchanged(key, left, autoAccept)
	}
	return s.resolveChanged(key, left, right, status, autoAccept)
}

// resolveUnchanged handles keys present in both mappings with equal
// values. The auto-accept default is to keep the current value.
func (s *Session) resolveUnchanged(key string, left any, autoAccept bool) (*Instruction, error) {
	for {
		choice := "c"
		if !autoAccept {
			raw, err := s.prompter.AskChoice("(C)ontinue unchanged, input (n)ew value, or (d)elete value? ")
			if err != nil {
				return nil, err
			}
			choice = strings.ToLower(strings.TrimSpace(raw))
		}

		switch choice {
		case "", "c":
			return &Instruction{Action: ActionKeep, Key: key, Value: left}, nil
		case "n":
			val, err := s.prompter.AskChoice("Enter new value: ")
			if err != nil {
				return nil, err
			}
			return &Instruction{Action: ActionEdit, Key: key, Value: val}, nil
		case "d":
			return &Instruction{Action: ActionDelete, Key: key, Value: left}, nil
		}

		s.presenter.Notice("unrecognized input: enter c, n, or d")
	}
}

// resolveChanged handles keys whose two sides differ: deleted, added, or
// present in both with unequal values. The auto-accept default is the
// right-hand side. What "left" and "right" translate to depends on the
// status; see the switch arms.
func (s *Session) resolveChanged(key string, left, right any, status Status, autoAccept bool) (*Instruction, error) {
	for {
		choice := "r"
		if !autoAccept {
			raw, err := s.prompter.AskChoice("(L)eft, (r)ight, input (n)ew value, or (d)elete value? ")
			if err != nil {
				return nil, err
			}
			choice = strings.ToLower(strings.TrimSpace(raw))
		}

		switch choice {
		case "", "l":
			// Keeping the left side of a key that only exists on the
			// right is a no-op, not a delete.
			if status == StatusAdded {
				return nil, nil
			}
			return &Instruction{Action: ActionKeep, Key: key, Value: left}, nil
		case "r":
			switch status {
			case StatusDeleted:
				// The right side is absent here; a delete carries the
				// value being removed.
				return &Instruction{Action: ActionDelete, Key: key, Value: left}, nil
			case StatusAdded:
				return &Instruction{Action: ActionAdd, Key: key, Value: right}, nil
			default:
				return &Instruction{Action: ActionEdit, Key: key, Value: right}, nil
			}
		case "n":
			val, err := s.prompter.AskChoice("Enter new value: ")
			if err != nil {
				return nil, err
			}
			return &Instruction{Action: ActionEdit, Key: key, Value: val}, nil
		case "d":
			return &Instruction{Action: ActionDelete, Key: key, Value: left}, nil
		}

		s.presenter.Notice("unrecognized input: enter l, r, n, or d")
	}
}
