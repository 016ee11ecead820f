package diff

import "strings"

// Session diffs the contents of two mappings. It walks every key of A and
// B, shows each difference through its Presenter, and collects the
// instructions the operator accepts through its Prompter. The session
// never mutates A or B.
//
// Rejecting an added key (choosing "left" on a key absent from A) is
// deliberately a no-op rather than a delete: there is nothing on the left
// to keep, and a delete for a key that never existed in the target would
// fail at apply time. Such a key produces no instruction at all.
type Session struct {
	a, b      Mapping
	presenter Presenter
	prompter  Prompter
}

// NewSession creates a session over mappings a and b. Nil mappings are
// treated as empty.
func NewSession(a, b Mapping, presenter Presenter, prompter Prompter) *Session {
	return &Session{a: a, b: b, presenter: presenter, prompter: prompter}
}

// AutoRun runs a full pass accepting every difference automatically. The
// differences are still displayed but the operator is never asked.
func (s *Session) AutoRun(title string) ([]Instruction, error) {
	return s.Run(title, true)
}

// Run performs diff passes until the operator saves one. Each pass
// resolves every key in group order (deleted, added, common), shows the
// collected batch, and asks whether to save it or redo the whole pass
// from scratch. With autoAccept the first pass is saved unconditionally
// and every key resolves to its default choice, so the result is fully
// deterministic.
func (s *Session) Run(title string, autoAccept bool) ([]Instruction, error) {
	for {
		instructions, err := s.pass(title, autoAccept)
		if err != nil {
			return nil, err
		}

		s.presenter.Summary(instructions)

		if autoAccept {
			return instructions, nil
		}

		save, err := s.askSaveOrRedo()
		if err != nil {
			return nil, err
		}
		if save {
			return instructions, nil
		}
		// Redo: discard the batch and re-ask every key.
	}
}

// pass resolves every key once and returns the accepted instructions in
// group order (deleted, added, common) with sorted keys inside each group.
func (s *Session) pass(title string, autoAccept bool) ([]Instruction, error) {
	s.presenter.Title(title)

	common, onlyA, onlyB := Classify(s.a, s.b)
	instructions := []Instruction{}

	if len(common) == 0 && len(onlyA) == 0 && len(onlyB) == 0 {
		return instructions, nil
	}

	layout := NewLayout(s.a, s.b)

	for _, k := range onlyA {
		in, err := s.resolve(layout, k, s.a[k], nil, StatusDeleted, autoAccept)
		if err != nil {
			return nil, err
		}
		if in != nil {
			instructions = append(instructions, *in)
		}
	}

	for _, k := range onlyB {
		in, err := s.resolve(layout, k, nil, s.b[k], StatusAdded, autoAccept)
		if err != nil {
			return nil, err
		}
		if in != nil {
			instructions = append(instructions, *in)
		}
	}

	for _, k := range common {
		status := StatusDifferent
		if s.a[k] == s.b[k] {
			status = StatusUnchanged
		}
		in, err := s.resolve(layout, k, s.a[k], s.b[k], status, autoAccept)
		if err != nil {
			return nil, err
		}
		if in != nil {
			instructions = append(instructions, *in)
		}
	}

	return instructions, nil
}

// askSaveOrRedo asks the outer pass decision, re-prompting on anything it
// does not recognize. Empty input defaults to save.
func (s *Session) askSaveOrRedo() (bool, error) {
	for {
		raw, err := s.prompter.AskChoice("(S)ave or (r)edo? ")
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "", "s":
			return true, nil
		case "r":
			return false, nil
		}
		s.presenter.Notice("unrecognized input, try again")
	}
}
