package input

import (
	"io"
	"strings"
	"testing"
)

func TestMapToIntent_Commands(t *testing.T) {
	cases := []struct {
		code     string
		want     Action
		wantArgs []string
	}{
		{"reveal 3 4", ActionReveal, []string{"3", "4"}},
		{"R 3,4", ActionReveal, []string{"3", "4"}},
		{"  flag 0 7 ", ActionFlag, []string{"0", "7"}},
		{"3 4", ActionReveal, []string{"3", "4"}},
		{"new", ActionReset, nil},
		{"?", ActionHelp, nil},
		{"QUIT", ActionQuit, nil},
		{"dump", ActionDump, nil},
	}
	for _, c := range cases {
		t.Run(c.code, func(t *testing.T) {
			intent := MapToIntent(NewDebouncedInput(RawInput{Device: DeviceTerminal, Code: c.code}))
			if intent.Action != c.want {
				t.Errorf("Action = %v, want %v", ActionName(intent.Action), ActionName(c.want))
			}
			if strings.Join(intent.Args, " ") != strings.Join(c.wantArgs, " ") {
				t.Errorf("Args = %v, want %v", intent.Args, c.wantArgs)
			}
		})
	}
}

func TestMapToIntent_Unknown(t *testing.T) {
	intent := MapToIntent(NewDebouncedInput(RawInput{Code: "dance"}))
	if intent.Action != ActionNone {
		t.Errorf("Action = %v, want None", ActionName(intent.Action))
	}
	empty := MapToIntent(NewDebouncedInput(RawInput{Code: "   "}))
	if empty.Action != ActionNone || len(empty.Args) != 0 {
		t.Errorf("blank input = %+v, want ActionNone without args", empty)
	}
}

func TestGetBindingsByAction_Sorted(t *testing.T) {
	codes := GetBindingsByAction()[ActionReveal]
	want := []string{"o", "open", "r", "reveal"}
	if strings.Join(codes, ",") != strings.Join(want, ",") {
		t.Errorf("reveal bindings = %v, want %v", codes, want)
	}
}

func TestLineReader_ReadIntent(t *testing.T) {
	r := NewLineReader(strings.NewReader("flag 1 2\r\nq"))

	first, err := r.ReadIntent()
	if err != nil {
		t.Fatalf("first ReadIntent error: %v", err)
	}
	if first.Action != ActionFlag {
		t.Errorf("first Action = %v, want Flag", ActionName(first.Action))
	}

	second, err := r.ReadIntent()
	if err != nil {
		t.Fatalf("second ReadIntent error: %v", err)
	}
	if second.Action != ActionQuit {
		t.Errorf("second Action = %v, want Quit", ActionName(second.Action))
	}

	if _, err := r.ReadIntent(); err != io.EOF {
		t.Errorf("third ReadIntent error = %v, want io.EOF", err)
	}
}
