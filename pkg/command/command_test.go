package command

import (
	"testing"

	"github.com/joripage/orderbook-sim/pkg/orderbook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"BUY GFD 10 5 b1", Command{Kind: BUY, Side: orderbook.BUY, TimeInForce: orderbook.GFD, Price: 10, Qty: 5, ID: "b1"}},
		{"SELL IOC 9 8 s1", Command{Kind: SELL, Side: orderbook.SELL, TimeInForce: orderbook.IOC, Price: 9, Qty: 8, ID: "s1"}},
		{"  MODIFY   b1 SELL 11 2  ", Command{Kind: MODIFY, ID: "b1", Side: orderbook.SELL, Price: 11, Qty: 2}},
		{"CANCEL b1", Command{Kind: CANCEL, ID: "b1"}},
		{"PRINT", Command{Kind: PRINT}},
		// range and enum checks belong to the book
		{"BUY XYZ -1 0 b1", Command{Kind: BUY, Side: orderbook.BUY, TimeInForce: "XYZ", Price: -1, Qty: 0, ID: "b1"}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		line string
		err  error
	}{
		{"", ErrEmptyLine},
		{"   \t ", ErrEmptyLine},
		{"HOLD GFD 10 5 x", ErrUnknownCommand},
		{"buy GFD 10 5 x", ErrUnknownCommand},
		{"BUY GFD 10 5", ErrMalformedCommand},
		{"BUY GFD 10 5 x extra", ErrMalformedCommand},
		{"BUY GFD ten 5 x", ErrMalformedCommand},
		{"SELL GFD 10 5.5 x", ErrMalformedCommand},
		{"MODIFY x BUY 10", ErrMalformedCommand},
		{"MODIFY x BUY 10 q", ErrMalformedCommand},
		{"CANCEL", ErrMalformedCommand},
		{"PRINT now", ErrMalformedCommand},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := Parse(tt.line)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestCommandString(t *testing.T) {
	for _, line := range []string{"BUY GFD 10 5 b1", "MODIFY b1 SELL 11 2", "CANCEL b1", "PRINT"} {
		cmd, err := Parse(line)
		require.NoError(t, err)
		assert.Equal(t, line, cmd.String())
	}
}
