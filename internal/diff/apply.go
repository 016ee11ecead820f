package diff

import "fmt"

// Changed reports whether an instruction list contains anything but Keep
// instructions, i.e. whether applying it would modify the source.
func Changed(instructions []Instruction) bool {
	for _, in := range instructions {
		if in.Action != ActionKeep {
			return true
		}
	}
	return false
}

// Apply interprets an instruction list against source and returns the
// modified copy. Source itself is never mutated.
//
// If every instruction is a Keep, Apply returns a nil mapping and a nil
// error to signal "no changes"; callers must not assume a mapping is
// returned in that case.
//
// Each action is gated by the corresponding permission flag; a disallowed
// action fails with ErrPermissionDenied at the point of violation and the
// remaining instructions are not processed. Work done up to that point is
// not rolled back, which is why the partial result is never returned.
func Apply(source Mapping, instructions []Instruction, perms Permissions) (Mapping, error) {
	if !Changed(instructions) {
		return nil, nil
	}

	result := make(Mapping, len(source))
	for k, v := range source {
		result[k] = v
	}

	for _, in := range instructions {
		switch in.Action {
		case ActionDelete:
			if !perms.AllowDelete {
				return nil, fmt.Errorf("delete %q: %w", in.Key, ErrPermissionDenied)
			}
			if _, ok := result[in.Key]; !ok {
				return nil, fmt.Errorf("delete %q: %w", in.Key, ErrKeyNotFound)
			}
			delete(result, in.Key)

		case ActionAdd:
			if !perms.AllowAdd {
				return nil, fmt.Errorf("add %q: %w", in.Key, ErrPermissionDenied)
			}
			result[in.Key] = in.Value

		case ActionEdit:
			if !perms.AllowChange {
				return nil, fmt.Errorf("change %q: %w", in.Key, ErrPermissionDenied)
			}
			result[in.Key] = in.Value

		case ActionKeep:
			if !perms.AllowKeep {
				return nil, fmt.Errorf("keep %q: %w", in.Key, ErrPermissionDenied)
			}

		default:
			return nil, fmt.Errorf("action %q for key %q: %w", in.Action, in.Key, ErrUnrecognizedInstruction)
		}
	}

	return result, nil
}
