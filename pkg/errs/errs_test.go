package errs

import "testing"

var errorMessageTests = []struct {
	err     error
	wantMsg string
}{
	{
		OutOfRange{What: "selection base offset", ValidLow: 0, ValidHigh: 10, Actual: 100},
		"out of range: selection base offset must be from 0 to 10, but is 100",
	},
	{
		OutOfRange{What: "composing start", ValidLow: 1, ValidHigh: 0, Actual: 0},
		"out of range: composing start has no valid value, but is 0",
	},
}

func TestErrorMessages(t *testing.T) {
	for _, test := range errorMessageTests {
		if gotMsg := test.err.Error(); gotMsg != test.wantMsg {
			t.Errorf("got message %v, want %v", gotMsg, test.wantMsg)
		}
	}
}
