package diff

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"testing"
)

// fakePresenter records presenter calls for assertions.
type fakePresenter struct {
	titles    []string
	rows      []fakeRow
	summaries [][]Instruction
	notices   []string
}

type fakeRow struct {
	key    string
	left   any
	right  any
	status Status
}

func (p *fakePresenter) Title(text string) { p.titles = append(p.titles, text) }

func (p *fakePresenter) Row(_ Layout, key string, left, right any, status Status) {
	p.rows = append(p.rows, fakeRow{key: key, left: left, right: right, status: status})
}

func (p *fakePresenter) Summary(instructions []Instruction) {
	p.summaries = append(p.summaries, instructions)
}

func (p *fakePresenter) Notice(text string) { p.notices = append(p.notices, text) }

// scriptPrompter replays a fixed list of answers and fails with EOF when
// they run out.
type scriptPrompter struct {
	answers []string
	prompts []string
}

func (p *scriptPrompter) AskChoice(prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	if len(p.answers) == 0 {
		return "", io.EOF
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

func TestSessionAutoRun(t *testing.T) {
	a := Mapping{"Alice": 10, "Bob": 20, "Charlie": 30}
	b := Mapping{"Alice": 15, "Bob": 20, "David": 40}

	presenter := &fakePresenter{}
	session := NewSession(a, b, presenter, &scriptPrompter{})

	instructions, err := session.AutoRun("Test 1")
	if err != nil {
		t.Fatalf("AutoRun() error = %v", err)
	}

	want := []Instruction{
		{Action: ActionDelete, Key: "Charlie", Value: 30},
		{Action: ActionAdd, Key: "David", Value: 40},
		{Action: ActionEdit, Key: "Alice", Value: 15},
		{Action: ActionKeep, Key: "Bob", Value: 20},
	}
	if !reflect.DeepEqual(instructions, want) {
		t.Errorf("instructions = %v, want %v", instructions, want)
	}

	if len(presenter.titles) != 1 || presenter.titles[0] != "Test 1" {
		t.Errorf("titles = %v, want one %q", presenter.titles, "Test 1")
	}
	if len(presenter.rows) != 4 {
		t.Errorf("expected 4 rows shown, got %d", len(presenter.rows))
	}
	if len(presenter.summaries) != 1 {
		t.Errorf("expected 1 summary, got %d", len(presenter.summaries))
	}
}

func TestSessionAutoRunDeterministic(t *testing.T) {
	a := Mapping{"k1": "v1", "k3": "x", "k2": 7, "k9": true}
	b := Mapping{"k1": "v2", "k4": "new", "k2": 7}

	first, err := NewSession(a, b, &fakePresenter{}, &scriptPrompter{}).AutoRun("run")
	if err != nil {
		t.Fatalf("first AutoRun() error = %v", err)
	}
	second, err := NewSession(a, b, &fakePresenter{}, &scriptPrompter{}).AutoRun("run")
	if err != nil {
		t.Fatalf("second AutoRun() error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("runs differ:\n%v\n%v", first, second)
	}

	// Auto-accept resolves every key in the union to exactly one instruction.
	if len(first) != 5 {
		t.Errorf("expected 5 instructions, got %d", len(first))
	}
}

func TestSessionAutoRunEmpty(t *testing.T) {
	session := NewSession(Mapping{}, Mapping{}, &fakePresenter{}, &scriptPrompter{})

	instructions, err := session.AutoRun("empty")
	if err != nil {
		t.Fatalf("AutoRun() error = %v", err)
	}
	if len(instructions) != 0 {
		t.Errorf("expected no instructions, got %v", instructions)
	}
	if instructions == nil {
		t.Error("expected an empty list, got nil")
	}
}

func TestSessionRunInteractive(t *testing.T) {
	a := Mapping{"Alice": 10, "Bob": 20, "Charlie": 30}
	b := Mapping{"Alice": 15, "Bob": 20, "David": 40}

	tests := []struct {
		name        string
		answers     []string
		want        []Instruction
		wantNotices int
	}{
		{
			name: "accept everything then save",
			// Charlie (Deleted), David (Added), Alice (Different), Bob
			// (Unchanged), then the outer save prompt.
			answers: []string{"r", "r", "r", "c", "s"},
			want: []Instruction{
				{Action: ActionDelete, Key: "Charlie", Value: 30},
				{Action: ActionAdd, Key: "David", Value: 40},
				{Action: ActionEdit, Key: "Alice", Value: 15},
				{Action: ActionKeep, Key: "Bob", Value: 20},
			},
		},
		{
			name:    "keep left everywhere",
			answers: []string{"l", "l", "l", "c", "s"},
			want: []Instruction{
				{Action: ActionKeep, Key: "Charlie", Value: 30},
				// David is Added; rejecting it produces no instruction.
				{Action: ActionKeep, Key: "Alice", Value: 10},
				{Action: ActionKeep, Key: "Bob", Value: 20},
			},
		},
		{
			name:    "empty input defaults to keep and save",
			answers: []string{"", "", "", "", ""},
			want: []Instruction{
				{Action: ActionKeep, Key: "Charlie", Value: 30},
				{Action: ActionKeep, Key: "Alice", Value: 10},
				{Action: ActionKeep, Key: "Bob", Value: 20},
			},
		},
		{
			name:    "new value resolves to an edit",
			answers: []string{"r", "r", "n", "99", "c", "s"},
			want: []Instruction{
				{Action: ActionDelete, Key: "Charlie", Value: 30},
				{Action: ActionAdd, Key: "David", Value: 40},
				{Action: ActionEdit, Key: "Alice", Value: "99"},
				{Action: ActionKeep, Key: "Bob", Value: 20},
			},
		},
		{
			name:    "delete an unchanged key",
			answers: []string{"r", "r", "r", "d", "s"},
			want: []Instruction{
				{Action: ActionDelete, Key: "Charlie", Value: 30},
				{Action: ActionAdd, Key: "David", Value: 40},
				{Action: ActionEdit, Key: "Alice", Value: 15},
				{Action: ActionDelete, Key: "Bob", Value: 20},
			},
		},
		{
			name:        "unrecognized input re-prompts",
			answers:     []string{"?", "bogus", "r", "r", "r", "c", "s"},
			wantNotices: 2,
			want: []Instruction{
				{Action: ActionDelete, Key: "Charlie", Value: 30},
				{Action: ActionAdd, Key: "David", Value: 40},
				{Action: ActionEdit, Key: "Alice", Value: 15},
				{Action: ActionKeep, Key: "Bob", Value: 20},
			},
		},
		{
			name: "redo discards the first pass",
			// First pass keeps everything, redo, second pass accepts.
			answers:     []string{"l", "l", "l", "c", "r", "r", "r", "r", "c", "s"},
			wantNotices: 0,
			want: []Instruction{
				{Action: ActionDelete, Key: "Charlie", Value: 30},
				{Action: ActionAdd, Key: "David", Value: 40},
				{Action: ActionEdit, Key: "Alice", Value: 15},
				{Action: ActionKeep, Key: "Bob", Value: 20},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			presenter := &fakePresenter{}
			prompter := &scriptPrompter{answers: tt.answers}
			session := NewSession(a, b, presenter, prompter)

			instructions, err := session.Run("interactive", false)
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			if !reflect.DeepEqual(instructions, tt.want) {
				t.Errorf("instructions = %v, want %v", instructions, tt.want)
			}
			if len(presenter.notices) != tt.wantNotices {
				t.Errorf("notices = %v, want %d", presenter.notices, tt.wantNotices)
			}
			if len(prompter.answers) != 0 {
				t.Errorf("unused answers remain: %v", prompter.answers)
			}
		})
	}
}

func TestSessionDeleteAddedKey(t *testing.T) {
	// Choosing delete on an added key records the absent left value; the
	// resulting instruction fails later at apply time, by design of the
	// original decision policy.
	a := Mapping{}
	b := Mapping{"new": 5}

	instructions, err := NewSession(a, b, &fakePresenter{}, &scriptPrompter{answers: []string{"d", "s"}}).Run("t", false)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []Instruction{{Action: ActionDelete, Key: "new", Value: nil}}
	if !reflect.DeepEqual(instructions, want) {
		t.Errorf("instructions = %v, want %v", instructions, want)
	}

	if _, err := Apply(a, instructions, DefaultPermissions()); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Apply() error = %v, want ErrKeyNotFound", err)
	}
}

func TestSessionRunPrompterError(t *testing.T) {
	a := Mapping{"Alice": 10}
	b := Mapping{"Alice": 15}

	session := NewSession(a, b, &fakePresenter{}, &scriptPrompter{})

	if _, err := session.Run("aborted", false); err != io.EOF {
		t.Errorf("Run() error = %v, want io.EOF", err)
	}
}

func TestSessionDoesNotMutateInputs(t *testing.T) {
	a := Mapping{"Alice": 10, "Charlie": 30}
	b := Mapping{"Alice": 15, "David": 40}

	if _, err := NewSession(a, b, &fakePresenter{}, &scriptPrompter{}).AutoRun("t"); err != nil {
		t.Fatalf("AutoRun() error = %v", err)
	}

	if !reflect.DeepEqual(a, Mapping{"Alice": 10, "Charlie": 30}) {
		t.Errorf("a was mutated: %v", a)
	}
	if !reflect.DeepEqual(b, Mapping{"Alice": 15, "David": 40}) {
		t.Errorf("b was mutated: %v", b)
	}
}

func TestSessionRowStatuses(t *testing.T) {
	a := Mapping{"same": 1, "changed": 2, "gone": 3}
	b := Mapping{"same": 1, "changed": 20, "new": 4}

	presenter := &fakePresenter{}
	if _, err := NewSession(a, b, presenter, &scriptPrompter{}).AutoRun("t"); err != nil {
		t.Fatalf("AutoRun() error = %v", err)
	}

	want := []fakeRow{
		{key: "gone", left: 3, right: nil, status: StatusDeleted},
		{key: "new", left: nil, right: 4, status: StatusAdded},
		{key: "changed", left: 2, right: 20, status: StatusDifferent},
		{key: "same", left: 1, right: 1, status: StatusUnchanged},
	}
	if !reflect.DeepEqual(presenter.rows, want) {
		t.Errorf("rows = %v, want %v", presenter.rows, want)
	}
}

func TestSessionRoundTrip(t *testing.T) {
	// Applying the auto-accepted instructions of diff(A, B) to A yields B.
	a := Mapping{"Alice": 10, "Bob": 20, "Charlie": 30}
	b := Mapping{"Alice": 15, "Bob": 20, "David": 40}

	instructions, err := NewSession(a, b, &fakePresenter{}, &scriptPrompter{}).AutoRun("round trip")
	if err != nil {
		t.Fatalf("AutoRun() error = %v", err)
	}

	result, err := Apply(a, instructions, DefaultPermissions())
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if !reflect.DeepEqual(result, b) {
		t.Errorf("Apply() = %v, want %v", result, b)
	}
}

func ExampleSession_AutoRun() {
	a := Mapping{"Alice": 10, "Bob": 20, "Charlie": 30}
	b := Mapping{"Alice": 15, "Bob": 20, "David": 40}

	instructions, _ := NewSession(a, b, &fakePresenter{}, &scriptPrompter{}).AutoRun("example")
	for _, in := range instructions {
		fmt.Printf("%s %s %v\n", in.Action, in.Key, in.Value)
	}
	// Output:
	// d Charlie 30
	// a David 40
	// e Alice 15
	// k Bob 20
}
